package api

import (
	"context"
	"fmt"
	"strings"

	"soundboard/internal/board"
	"soundboard/internal/filter"
	"soundboard/internal/services"
	"soundboard/internal/upload"
)

// BoardService runs board operations and returns DTOs.
type BoardService struct {
	board *board.Board
}

// NewBoardService constructs a BoardService around the provided board.
func NewBoardService(b *board.Board) *BoardService {
	if b == nil {
		return nil
	}
	return &BoardService{board: b}
}

// View returns the current board.
func (s *BoardService) View() BoardView {
	return FromView(s.board.View())
}

// ApplyFilter applies req's action, then mode, category, and query.
func (s *BoardService) ApplyFilter(req FilterRequest) (BoardView, error) {
	mode := filter.Mode("")
	if strings.TrimSpace(req.Mode) != "" {
		parsed, err := filter.ParseMode(req.Mode)
		if err != nil {
			return BoardView{}, services.Validation("api", err.Error())
		}
		mode = parsed
	}

	var action func(filter.State) filter.State
	switch strings.ToLower(strings.TrimSpace(req.Action)) {
	case "":
	case FilterActionHome:
		action = filter.State.GoHome
	case FilterActionClear:
		action = filter.State.Clear
	case FilterActionJustAdded:
		action = filter.State.SelectJustAdded
	default:
		return BoardView{}, services.Validation("api", fmt.Sprintf("unknown filter action %q", req.Action))
	}

	view := s.board.Apply(func(state filter.State) filter.State {
		if action != nil {
			state = action(state)
		}
		switch mode {
		case filter.ModeJustAdded:
			state = state.SelectJustAdded()
		case filter.ModeNormal:
			if req.Category == nil && state.Mode == filter.ModeJustAdded {
				state = state.SelectCategory(filter.CategoryAll)
			}
		}
		if req.Category != nil {
			state = state.SelectCategory(*req.Category)
		}
		if req.Query != nil {
			state = state.SetQuery(*req.Query)
		}
		return state
	})
	return FromView(view), nil
}

// Play triggers a sound.
func (s *BoardService) Play(ctx context.Context, id string) PlayResponse {
	id = strings.TrimSpace(id)
	return FromOutcome(id, s.board.Play(services.WithSoundID(ctx, id), id))
}

// Upload adds a clip to the board.
func (s *BoardService) Upload(ctx context.Context, name, category string, src *upload.Source) (UploadResponse, error) {
	entry, err := s.board.AddEntry(ctx, name, category, src)
	if err != nil {
		return UploadResponse{}, err
	}
	return UploadResponse{Sound: FromEntry(entry), Notice: board.UploadNotice(entry.Label)}, nil
}

// Login signs in or signs up.
func (s *BoardService) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	session, err := s.board.Login(ctx, req.Email, req.Password, req.SignUp)
	if err != nil {
		return LoginResponse{}, err
	}
	return LoginResponse{Session: FromSession(session), Notice: board.LoginNotice(session.DisplayName, req.SignUp)}, nil
}

// Install returns the install fallback message.
func (s *BoardService) Install(url string) InstallResponse {
	return InstallResponse{Message: s.board.Install(), URL: url}
}
