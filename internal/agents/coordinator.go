package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

// agentHandOff resolves the next graph node from the hand-off target the
// previous node recorded in state.
func agentHandOff(ctx context.Context, input string) (next string, err error) {
	_ = compose.ProcessState[*AnalysisState](ctx, func(_ context.Context, state *AnalysisState) error {
		next = state.Goto
		return nil
	})
	return next, nil
}

// coordinatorRouter pops the next specialist from the plan, or hands off to
// the synthesizer once the plan drains.
func coordinatorRouter(ctx context.Context, input string, opts ...any) (output string, err error) {
	err = compose.ProcessState[*AnalysisState](ctx, func(_ context.Context, state *AnalysisState) error {
		defer func() {
			output = state.Goto
		}()
		if len(state.Plan) == 0 {
			state.Goto = Synthesizer
			return nil
		}
		state.Goto = state.Plan[0]
		state.Plan = state.Plan[1:]
		return nil
	})
	return output, err
}

func newSynthesizerNode[I, O any](ctx context.Context, cm model.ToolCallingChatModel) *compose.Graph[I, O] {
	g := compose.NewGraph[I, O]()

	_ = g.AddLambdaNode("load", compose.InvokableLambdaWithOption(loadSynthesizerMessages))
	_ = g.AddChatModelNode("model", cm)
	_ = g.AddLambdaNode("finish", compose.InvokableLambdaWithOption(synthesizerFinish))

	_ = g.AddEdge(compose.START, "load")
	_ = g.AddEdge("load", "model")
	_ = g.AddEdge("model", "finish")
	_ = g.AddEdge("finish", compose.END)
	return g
}

func loadSynthesizerMessages(ctx context.Context, name string, opts ...any) (output []*schema.Message, err error) {
	err = compose.ProcessState[*AnalysisState](ctx, func(_ context.Context, state *AnalysisState) error {
		var sb strings.Builder
		sb.WriteString("Question: ")
		sb.WriteString(state.Question)
		sb.WriteString("\n\nSpecialist sections:\n")
		for _, member := range MemberNames {
			section, ok := state.Sections[member]
			if !ok || strings.TrimSpace(section) == "" {
				continue
			}
			fmt.Fprintf(&sb, "\n## %s\n%s\n", member, section)
		}

		output = []*schema.Message{
			schema.SystemMessage(synthesizerInstructions),
			schema.UserMessage(sb.String()),
		}
		return nil
	})
	return output, err
}

func synthesizerFinish(ctx context.Context, input *schema.Message, opts ...any) (output string, err error) {
	err = compose.ProcessState[*AnalysisState](ctx, func(_ context.Context, state *AnalysisState) error {
		if input != nil {
			state.FinalReport = input.Content
			state.Messages = append(state.Messages, input)
		}
		output = state.FinalReport
		return nil
	})
	return output, err
}
