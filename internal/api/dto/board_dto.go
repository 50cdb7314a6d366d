package dto

import (
	"github.com/spec-kit/ticket-board/internal/board"
)

// BoardView is the template data for the board page.
type BoardView struct {
	Title    string
	Subtitle string
	Page     board.Page
}

// ErrorView is the template data for the retry screen.
type ErrorView struct {
	Title    string
	Code     string
	Message  string
	RetryURL string
}
