package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"coursecms/internal/application/usecase"
	"coursecms/internal/domain"
	"coursecms/internal/platform/logger"

	"github.com/gin-gonic/gin"
)

type ChallengeHandler struct {
	challenges *usecase.ChallengeUseCase
	log        *logger.Logger
}

func NewChallengeHandler(challenges *usecase.ChallengeUseCase, log *logger.Logger) *ChallengeHandler {
	return &ChallengeHandler{challenges: challenges, log: log}
}

type saveChallengeReq struct {
	Challenge json.RawMessage `json:"challenge"`
}

// GET /api/challenge
func (h *ChallengeHandler) GetPublic(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"challenge": h.challenges.Current(c)})
}

// POST /api/admin/challenge
// Same data as the public read; kept behind the gate for parity with the
// admin course listing.
func (h *ChallengeHandler) GetAdmin(c *gin.Context) {
	c.JSON(http.StatusOK, h.challenges.Document(c))
}

// POST /api/admin/challenge/save
func (h *ChallengeHandler) Save(c *gin.Context) {
	req := bind[saveChallengeReq](c)
	in, err := parseChallenge(req.Challenge)
	if err != nil {
		respondError(c, h.log, err, "Failed to save challenge")
		return
	}

	challenge, err := h.challenges.Save(c, in)
	if err != nil {
		respondError(c, h.log, err, "Failed to save challenge")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "challenge": challenge})
}

// POST /api/admin/challenge/delete
func (h *ChallengeHandler) Delete(c *gin.Context) {
	if err := h.challenges.Delete(c); err != nil {
		respondError(c, h.log, err, "Failed to delete challenge")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// parseChallenge returns nil for an absent or falsy challenge value, which
// clears the slot. Fields of an unexpected type are dropped; any other
// truthy value saves a challenge.
func parseChallenge(raw json.RawMessage) (*domain.ChallengeInput, error) {
	if domain.Falsy(raw) {
		return nil, nil
	}

	var in domain.ChallengeInput
	if err := json.Unmarshal(raw, &in); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, domain.ErrInvalidPayload
		}
	}
	return &in, nil
}
