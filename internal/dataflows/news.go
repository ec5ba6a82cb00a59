package dataflows

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/config"
)

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title string    `xml:"title"`
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	PubDate     string    `xml:"pubDate"`
	Source      rssSource `xml:"source"`
}

type rssSource struct {
	URL  string `xml:"url,attr"`
	Text string `xml:",chardata"`
}

// NewsClient searches Google News for market coverage. This is the
// web-search capability handed to the research and sentiment agents.
type NewsClient struct {
	client *resty.Client
	cache  *memoryCache
	retry  *RetryConfig
}

// NewNewsClient creates a news search client.
func NewNewsClient(cfg *config.Config) *NewsClient {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", "Mozilla/5.0 (compatible; StockAnalyst/2.0)")

	return &NewsClient{
		client: client,
		cache:  newMemoryCache(30*time.Minute, cfg.CacheEnabled),
		retry:  DefaultRetryConfig(),
	}
}

// SearchNews returns up to maxResults recent articles matching query.
func (nc *NewsClient) SearchNews(query string, maxResults int) ([]*NewsArticle, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	key := cacheKey("google_news", "search", map[string]interface{}{
		"query": query,
		"max":   maxResults,
	})
	if cached, ok := nc.cache.get(key); ok {
		return cached.([]*NewsArticle), nil
	}

	feedURL := buildNewsFeedURL(query)

	var articles []*NewsArticle
	err := WithRetry(nc.retry, func() error {
		resp, err := nc.client.R().Get(feedURL)
		if err != nil {
			return fmt.Errorf("fetch news feed: %w", err)
		}
		if resp.StatusCode() != 200 {
			return fmt.Errorf("news feed returned HTTP %d", resp.StatusCode())
		}

		var feed rssFeed
		if err := xml.Unmarshal(resp.Body(), &feed); err != nil {
			return fmt.Errorf("parse news feed: %w", err)
		}

		articles = articles[:0]
		for i, item := range feed.Channel.Items {
			if i >= maxResults {
				break
			}
			articles = append(articles, convertFeedItem(item))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	nc.cache.set(key, articles)
	return articles, nil
}

func buildNewsFeedURL(query string) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("hl", "en")
	v.Set("gl", "US")
	v.Set("ceid", "US:en")
	return "https://news.google.com/rss/search?" + v.Encode()
}

func convertFeedItem(item rssItem) *NewsArticle {
	pubTime, err := time.Parse(time.RFC1123Z, item.PubDate)
	if err != nil {
		pubTime, _ = time.Parse(time.RFC1123, item.PubDate)
	}
	if pubTime.IsZero() {
		pubTime = time.Now()
	}

	source := item.Source.Text
	if source == "" && item.Source.URL != "" {
		if u, err := url.Parse(item.Source.URL); err == nil {
			source = u.Host
		}
	}

	return &NewsArticle{
		Title:       strings.TrimSpace(item.Title),
		Content:     stripHTML(item.Description),
		URL:         item.Link,
		Source:      source,
		PublishedAt: pubTime,
	}
}

// stripHTML flattens the HTML fragments Google News puts in item
// descriptions down to plain text.
func stripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.TrimSpace(doc.Text())
}
