package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/dataflows"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/models"
)

// PromptForSymbols asks for a comma-separated symbol list.
func PromptForSymbols() ([]string, error) {
	var input string
	prompt := &survey.Input{
		Message: "Enter stock symbols (comma-separated, e.g. AAPL, MSFT, GOOGL):",
		Help:    "Up to three symbols are analyzed per run",
	}

	err := survey.AskOne(prompt, &input, survey.WithValidator(func(val interface{}) error {
		str, _ := val.(string)
		if strings.TrimSpace(str) == "" {
			return fmt.Errorf("enter at least one symbol")
		}
		for _, part := range strings.Split(str, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			if err := dataflows.ValidateSymbol(part); err != nil {
				return err
			}
		}
		return nil
	}))
	if err != nil {
		return nil, err
	}

	var symbols []string
	for _, part := range strings.Split(input, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		symbols = append(symbols, dataflows.NormalizeSymbol(part))
	}
	return symbols, nil
}

// PromptForAnalysisType asks which analysis to run.
func PromptForAnalysisType() (string, error) {
	var analysisType string
	prompt := &survey.Select{
		Message: "Choose an analysis type:",
		Options: []string{
			models.AnalysisQuick,
			models.AnalysisComprehensive,
			models.AnalysisTechnical,
			models.AnalysisRisk,
			models.AnalysisSentiment,
			models.AnalysisPortfolio,
		},
		Default: models.AnalysisComprehensive,
	}

	if err := survey.AskOne(prompt, &analysisType); err != nil {
		return "", err
	}
	return analysisType, nil
}
