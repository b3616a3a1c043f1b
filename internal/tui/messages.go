package tui

import "prosegate/internal/history"

type runsLoadedMsg struct {
	runs []history.Run
}

type historyErrMsg struct {
	err error
}
