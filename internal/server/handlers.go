package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/match"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// createRequest is the optional body of POST /api/games: a FEN string, or a
// board with the side to move (white by default).
type createRequest struct {
	FEN   string                `json:"fen"`
	Board [][]*output.JSONPiece `json:"board"`
	Turn  string                `json:"turn"`
}

// boardRequest is the body of PUT /api/games/:id/board.
type boardRequest struct {
	Board [][]*output.JSONPiece `json:"board"`
}

// movesResponse is the body of GET /api/games/:id/moves.
type movesResponse struct {
	Square string            `json:"square,omitempty"`
	Moves  []output.JSONMove `json:"moves"`
}

// gameSummary is one entry of GET /api/games.
type gameSummary struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
	FEN     string    `json:"fen"`
	Turn    string    `json:"turn"`
	Status  string    `json:"status"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"matches": s.registry.Len(),
		"uptime":  time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req createRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	g, err := newGame(req)
	if err != nil {
		return err
	}

	m, err := s.registry.Create(g)
	if err != nil {
		return err
	}
	s.log.Info().Str("match", m.ID).Bool("custom", g != nil).Msg("match created")

	jg, err := gameJSON(m)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(jg)
}

func (s *Server) listGames(c *fiber.Ctx) error {
	matches := s.registry.List()
	list := make([]gameSummary, 0, len(matches))
	for _, m := range matches {
		summary := gameSummary{ID: m.ID, Created: m.Created}
		err := m.Do(func(g *engine.Game) error {
			status, err := g.Status(g.Turn())
			if err != nil {
				return err
			}
			summary.FEN = g.FEN()
			summary.Turn = output.ColourName(g.Turn())
			summary.Status = status.String()
			return nil
		})
		if err != nil {
			return err
		}
		list = append(list, summary)
	}
	return c.JSON(fiber.Map{"games": list})
}

func (s *Server) getGame(c *fiber.Ctx) error {
	m, err := s.registry.Get(c.Params("id"))
	if err != nil {
		return err
	}
	jg, err := gameJSON(m)
	if err != nil {
		return err
	}
	return c.JSON(jg)
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := s.registry.Delete(id); err != nil {
		return err
	}
	s.log.Info().Str("match", id).Msg("match deleted")
	return c.SendStatus(fiber.StatusNoContent)
}

// legalMoves lists the legal moves of the piece on ?square=, or of the
// side to move when no square is given.
func (s *Server) legalMoves(c *fiber.Ctx) error {
	m, err := s.registry.Get(c.Params("id"))
	if err != nil {
		return err
	}

	name := c.Query("square")
	var from chess.Position
	if name != "" {
		if from, err = chess.ParseSquare(name); err != nil {
			return err
		}
	}

	var moves []chess.Move
	err = m.Do(func(g *engine.Game) error {
		var err error
		if name == "" {
			moves, err = g.AllLegalMoves(g.Turn())
		} else {
			moves, err = g.LegalMoves(from)
		}
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(movesResponse{Square: name, Moves: output.MovesToJSON(moves)})
}

func (s *Server) applyMove(c *fiber.Ctx) error {
	m, err := s.registry.Get(c.Params("id"))
	if err != nil {
		return err
	}

	var req output.JSONMove
	if err := parseBody(c, &req); err != nil {
		return err
	}
	mv, err := output.MoveFromJSON(req)
	if err != nil {
		return err
	}

	var jg *output.JSONGame
	err = m.Do(func(g *engine.Game) error {
		if err := g.ApplyMove(mv); err != nil {
			return err
		}
		var err error
		jg, err = output.GameToJSON(g)
		return err
	})
	if err != nil {
		return err
	}
	jg.ID = m.ID
	s.log.Debug().Str("match", m.ID).Str("move", mv.String()).Str("status", jg.Status).Msg("move applied")
	return c.JSON(jg)
}

func (s *Server) setBoard(c *fiber.Ctx) error {
	m, err := s.registry.Get(c.Params("id"))
	if err != nil {
		return err
	}

	var req boardRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Board == nil {
		return &errors.ParseError{Err: errors.ErrInvalidRequest, Field: "board", Expected: "8x8 array"}
	}
	snapshot, err := output.SnapshotFromJSON(req.Board)
	if err != nil {
		return err
	}

	var jg *output.JSONGame
	err = m.Do(func(g *engine.Game) error {
		if err := g.SetBoard(snapshot); err != nil {
			return err
		}
		var err error
		jg, err = output.GameToJSON(g)
		return err
	})
	if err != nil {
		return err
	}
	jg.ID = m.ID
	return c.JSON(jg)
}

// newGame builds the starting game a create request asks for; nil means the
// standard position.
func newGame(req createRequest) (*engine.Game, error) {
	switch {
	case req.FEN != "" && req.Board != nil:
		return nil, &errors.ParseError{Err: errors.ErrInvalidRequest, Field: "body", Expected: "fen or board, not both"}
	case req.FEN != "":
		return engine.NewGameFromFEN(req.FEN)
	case req.Board != nil:
		snapshot, err := output.SnapshotFromJSON(req.Board)
		if err != nil {
			return nil, err
		}
		turn := chess.White
		if req.Turn != "" {
			if turn, err = output.ParseColour(req.Turn); err != nil {
				return nil, err
			}
		}
		return engine.NewGameFromSnapshot(snapshot, turn)
	default:
		return nil, nil
	}
}

// gameJSON renders a match under its lock.
func gameJSON(m *match.Match) (*output.JSONGame, error) {
	var jg *output.JSONGame
	err := m.Do(func(g *engine.Game) error {
		var err error
		jg, err = output.GameToJSON(g)
		return err
	})
	if err != nil {
		return nil, err
	}
	jg.ID = m.ID
	return jg, nil
}

// parseBody decodes a JSON body into out; an empty body leaves out untouched.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return errors.Wrapf(errors.ErrInvalidRequest, "decoding body: %v", err)
	}
	return nil
}
