package tui

import "github.com/fabiotcs/apptributario-sub000/internal/output"

// Scene represents the screens of the TUI
type Scene int

const (
	SceneComparison Scene = iota
	SceneOpportunities
)

const sceneCount = 2

func (s Scene) String() string {
	switch s {
	case SceneComparison:
		return "Regimes"
	case SceneOpportunities:
		return "Oportunidades"
	default:
		return "Desconhecida"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ReportLoadedMsg carries the computed report once the input file is processed
type ReportLoadedMsg struct {
	Report *output.Report
}
