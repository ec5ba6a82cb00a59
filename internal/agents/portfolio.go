package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/flow/agent/react"
	"github.com/cloudwego/eino/schema"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/tools"
)

// RunPortfolio answers a portfolio analysis request with the portfolio
// strategist alone. Unlike Run, this path does not involve the coordinator
// or the rest of the team.
func (t *Team) RunPortfolio(ctx context.Context, prompt string) (string, error) {
	cm, err := NewChatModel(ctx, t.cfg)
	if err != nil {
		return "", err
	}

	agent, err := react.NewAgent(ctx, &react.AgentConfig{
		MaxStep:          40,
		ToolCallingModel: cm,
		ToolsConfig: compose.ToolsNodeConfig{
			Tools: []tool.BaseTool{
				tools.NewQuoteTool(t.data),
				tools.NewHistoryTool(t.data),
				tools.NewCompanyInfoTool(t.data),
			},
		},
		StreamToolCallChecker: ToolCallChecker,
	})
	if err != nil {
		return "", fmt.Errorf("create portfolio agent: %w", err)
	}

	systemPrompt := fmt.Sprintf("%s\n\nFor your reference, the current date is %s.",
		portfolioStrategyInstructions, time.Now().Format("2006-01-02"))

	msg, err := agent.Generate(ctx, []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(prompt),
	})
	if err != nil {
		return "", fmt.Errorf("portfolio run: %w", err)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return "Analysis completed but no content was generated. Please try rephrasing your question.", nil
	}
	return msg.Content, nil
}
