package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// statusFor maps an error to its HTTP status code.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, chesserrors.ErrMatchNotFound),
		errors.Is(err, chesserrors.ErrNoPieceAtSquare):
		return fiber.StatusNotFound
	case errors.Is(err, chesserrors.ErrWrongTurn),
		errors.Is(err, chesserrors.ErrIllegalMove):
		return fiber.StatusConflict
	case errors.Is(err, chesserrors.ErrInvalidPosition),
		errors.Is(err, chesserrors.ErrInvalidFEN),
		errors.Is(err, chesserrors.ErrInvalidSnapshot),
		errors.Is(err, chesserrors.ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, chesserrors.ErrMissingKing):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, chesserrors.ErrRegistryFull):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// handleError is the app's error handler: every failure becomes
// {"error": "..."} with the mapped status.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	switch {
	case chesserrors.IsFatal(err):
		s.log.Error().Err(err).Bool("fatal", true).Int("status", code).
			Str("rid", c.GetRespHeader(fiber.HeaderXRequestID)).Msg("broken board invariant")
	case code >= fiber.StatusInternalServerError:
		s.log.Error().Err(err).Str("rid", c.GetRespHeader(fiber.HeaderXRequestID)).Msg("request failed")
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
