package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/config"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/dataflows"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/logger"
)

// Team coordinates the six specialist agents over a shared state graph. A
// fresh graph is compiled per run so each query gets isolated state.
type Team struct {
	cfg  *config.Config
	data *dataflows.Client
}

// NewTeam fails fast when the active provider has no credential, so the
// service can report the misconfiguration before accepting queries.
func NewTeam(cfg *config.Config, data *dataflows.Client) (*Team, error) {
	if !cfg.APIKeyConfigured() {
		return nil, ErrNoAPIKey
	}
	return &Team{cfg: cfg, data: data}, nil
}

// MemberCount reports the number of specialist agents on the team.
func (t *Team) MemberCount() int {
	return len(MemberNames)
}

// Run executes one analysis: the coordinator walks the specialist plan for
// the analysis type, then the synthesizer merges the sections into the final
// report.
func (t *Team) Run(ctx context.Context, prompt, analysisType string) (string, error) {
	cm, err := NewChatModel(ctx, t.cfg)
	if err != nil {
		return "", err
	}

	g := compose.NewGraph[string, string](
		compose.WithGenLocalState(func(ctx context.Context) *AnalysisState {
			return NewAnalysisState(prompt, analysisType)
		}),
	)

	roster := specialistRoster(t.data)

	outMap := map[string]bool{Coordinator: true, Synthesizer: true}
	for _, sp := range roster {
		outMap[sp.name] = true
	}

	for _, sp := range roster {
		node, err := newSpecialistNode[string, string](ctx, sp, cm)
		if err != nil {
			return "", err
		}
		_ = g.AddGraphNode(sp.name, node, compose.WithNodeName(sp.name))
		_ = g.AddBranch(sp.name, compose.NewGraphBranch(agentHandOff, outMap))
	}

	_ = g.AddLambdaNode(Coordinator, compose.InvokableLambdaWithOption(coordinatorRouter))
	_ = g.AddGraphNode(Synthesizer, newSynthesizerNode[string, string](ctx, cm), compose.WithNodeName(Synthesizer))

	_ = g.AddEdge(compose.START, Coordinator)
	_ = g.AddBranch(Coordinator, compose.NewGraphBranch(agentHandOff, outMap))
	_ = g.AddEdge(Synthesizer, compose.END)

	runnable, err := g.Compile(ctx,
		compose.WithGraphName("stock-analysis-team"),
		compose.WithNodeTriggerMode(compose.AnyPredecessor),
	)
	if err != nil {
		return "", fmt.Errorf("compile team graph: %w", err)
	}

	logger.Debug("running analysis team", map[string]interface{}{
		"analysis_type": analysisType,
		"members":       t.MemberCount(),
	})

	out, err := runnable.Invoke(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("team run: %w", err)
	}
	if strings.TrimSpace(out) == "" {
		return "Analysis completed but no content was generated. Please try rephrasing your question.", nil
	}
	return out, nil
}
