package agents

import (
	"testing"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/models"
)

func TestPlanForAnalysisTypes(t *testing.T) {
	cases := []struct {
		analysisType string
		want         []string
	}{
		{models.AnalysisQuick, []string{FinancialData}},
		{models.AnalysisTechnical, []string{FinancialData, TechnicalAnalysis}},
		{models.AnalysisRisk, []string{MarketResearch, RiskAssessment}},
		{models.AnalysisSentiment, []string{MarketResearch, MarketSentiment}},
		{models.AnalysisPortfolio, []string{FinancialData, PortfolioStrategy}},
	}
	for _, tc := range cases {
		got := planFor(tc.analysisType)
		if len(got) != len(tc.want) {
			t.Fatalf("planFor(%q) = %v, want %v", tc.analysisType, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("planFor(%q)[%d] = %q, want %q", tc.analysisType, i, got[i], tc.want[i])
			}
		}
	}
}

func TestPlanForUnknownTypeRunsFullTeam(t *testing.T) {
	got := planFor("something-else")
	if len(got) != len(MemberNames) {
		t.Fatalf("unknown type plan has %d members, want %d", len(got), len(MemberNames))
	}
	for i, name := range MemberNames {
		if got[i] != name {
			t.Fatalf("plan[%d] = %q, want %q", i, got[i], name)
		}
	}

	// The plan must be a copy; draining it should not mutate the roster.
	got = got[1:]
	if len(MemberNames) != 6 {
		t.Fatalf("member roster changed, len = %d", len(MemberNames))
	}
}

func TestNewAnalysisStateSeedsRun(t *testing.T) {
	st := NewAnalysisState("What about AAPL?", models.AnalysisQuick)
	if st.Goto != Coordinator {
		t.Fatalf("Goto = %q, want %q", st.Goto, Coordinator)
	}
	if len(st.Messages) != 1 || st.Messages[0].Content != "What about AAPL?" {
		t.Fatalf("unexpected seed messages: %+v", st.Messages)
	}
	if st.Sections == nil {
		t.Fatal("Sections map not initialized")
	}
	if len(st.Plan) != 1 || st.Plan[0] != FinancialData {
		t.Fatalf("quick plan = %v", st.Plan)
	}
}
