package agents

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/flow/agent/react"
	"github.com/cloudwego/eino/schema"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/dataflows"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/tools"
)

type specialist struct {
	name         string
	instructions string
	tools        []tool.BaseTool
}

// specialistRoster wires each agent to its tool set. Tool assignments follow
// the specialty: data-centric agents get quotes and history, research-centric
// agents get news search.
func specialistRoster(data *dataflows.Client) []specialist {
	quoteTool := tools.NewQuoteTool(data)
	historyTool := tools.NewHistoryTool(data)
	companyTool := tools.NewCompanyInfoTool(data)
	newsTool := tools.NewNewsSearchTool(data)

	return []specialist{
		{
			name:         MarketResearch,
			instructions: marketResearchInstructions,
			tools:        []tool.BaseTool{newsTool, companyTool},
		},
		{
			name:         FinancialData,
			instructions: financialDataInstructions,
			tools:        []tool.BaseTool{quoteTool, historyTool, companyTool},
		},
		{
			name:         TechnicalAnalysis,
			instructions: technicalAnalysisInstructions,
			tools:        []tool.BaseTool{quoteTool, historyTool},
		},
		{
			name:         RiskAssessment,
			instructions: riskAssessmentInstructions,
			tools:        []tool.BaseTool{quoteTool, historyTool, newsTool},
		},
		{
			name:         MarketSentiment,
			instructions: marketSentimentInstructions,
			tools:        []tool.BaseTool{newsTool, quoteTool},
		},
		{
			name:         PortfolioStrategy,
			instructions: portfolioStrategyInstructions,
			tools:        []tool.BaseTool{quoteTool, historyTool, companyTool},
		},
	}
}

func newSpecialistNode[I, O any](ctx context.Context, sp specialist, cm model.ToolCallingChatModel) (*compose.Graph[I, O], error) {
	g := compose.NewGraph[I, O]()

	agent, err := react.NewAgent(ctx, &react.AgentConfig{
		MaxStep:          40,
		ToolCallingModel: cm,
		ToolsConfig: compose.ToolsNodeConfig{
			Tools: sp.tools,
		},
		StreamToolCallChecker: ToolCallChecker,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s agent: %w", sp.name, err)
	}
	agentLambda, err := compose.AnyLambda(agent.Generate, agent.Stream, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create %s agent lambda: %w", sp.name, err)
	}

	_ = g.AddLambdaNode("load", compose.InvokableLambdaWithOption(loadSpecialistMessages(sp)))
	_ = g.AddLambdaNode("agent", agentLambda)
	_ = g.AddLambdaNode("router", compose.InvokableLambdaWithOption(specialistRouter(sp.name)))

	_ = g.AddEdge(compose.START, "load")
	_ = g.AddEdge("load", "agent")
	_ = g.AddEdge("agent", "router")
	_ = g.AddEdge("router", compose.END)
	return g, nil
}

func loadSpecialistMessages(sp specialist) func(ctx context.Context, name string, opts ...any) ([]*schema.Message, error) {
	return func(ctx context.Context, name string, opts ...any) (output []*schema.Message, err error) {
		err = compose.ProcessState[*AnalysisState](ctx, func(_ context.Context, state *AnalysisState) error {
			systemPrompt := fmt.Sprintf("%s\n\n%s\n\nFor your reference, the current date is %s.",
				collaborationPreamble, sp.instructions, time.Now().Format("2006-01-02"))

			output = []*schema.Message{
				schema.SystemMessage(systemPrompt),
				schema.UserMessage(state.Question),
			}
			return nil
		})
		return output, err
	}
}

func specialistRouter(name string) func(ctx context.Context, input *schema.Message, opts ...any) (string, error) {
	return func(ctx context.Context, input *schema.Message, opts ...any) (output string, err error) {
		err = compose.ProcessState[*AnalysisState](ctx, func(_ context.Context, state *AnalysisState) error {
			defer func() {
				output = state.Goto
			}()
			if input != nil {
				state.Sections[name] = input.Content
				state.Messages = append(state.Messages, input)
			}
			state.Goto = Coordinator
			return nil
		})
		return output, nil
	}
}
