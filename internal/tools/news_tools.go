package tools

import (
	"context"

	"github.com/cloudwego/eino/components/tool"
	t_utils "github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/dataflows"
)

// NewsSearchInput is the argument payload for the search_market_news tool.
type NewsSearchInput struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// NewsSearchOutput is the result payload for the search_market_news tool.
type NewsSearchOutput struct {
	Query    string        `json:"query"`
	Articles []NewsSummary `json:"articles"`
}

// NewsSummary is one article in the search_market_news result.
type NewsSummary struct {
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}

// NewNewsSearchTool creates the web-search tool handed to the research and
// sentiment agents.
func NewNewsSearchTool(data *dataflows.Client) tool.BaseTool {
	return t_utils.NewTool(
		&schema.ToolInfo{
			Name: "search_market_news",
			Desc: "Search recent financial news and market coverage for a topic or symbol",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {
					Type:     "string",
					Desc:     "Search query, e.g. 'AAPL earnings' or 'semiconductor sector outlook'",
					Required: true,
				},
				"max_results": {
					Type:     "integer",
					Desc:     "Maximum number of articles to return (default 5, max 20)",
					Required: false,
				},
			}),
		},
		func(ctx context.Context, input NewsSearchInput) (*NewsSearchOutput, error) {
			max := input.MaxResults
			if max <= 0 {
				max = 5
			}
			if max > 20 {
				max = 20
			}

			articles, err := data.SearchNews(input.Query, max)
			if err != nil {
				return nil, err
			}

			out := &NewsSearchOutput{Query: input.Query}
			for _, a := range articles {
				out.Articles = append(out.Articles, NewsSummary{
					Title:       a.Title,
					Summary:     a.Content,
					Source:      a.Source,
					URL:         a.URL,
					PublishedAt: a.PublishedAt.Format("2006-01-02"),
				})
			}
			return out, nil
		},
	)
}
