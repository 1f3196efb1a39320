package handler

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"btd_party/internal/app"
	"btd_party/internal/domain/roster"
	"btd_party/internal/service"
)

// RosterManager is the part of service.RosterService the API needs
type RosterManager interface {
	List() []app.Survivor
	AddSurvivor(ctx context.Context, raw string) ([]app.Survivor, error)
	RemoveSurvivor(ctx context.Context, index int) ([]app.Survivor, error)
	Clear(ctx context.Context) error
	CalculateParty(rawDefense string) app.PartyReport
	QualifyingParties(rawDefense string) (int, []app.QualifyingParty)
}

// RosterHandler serves the roster and party calculations.
type RosterHandler struct {
	roster RosterManager
}

// NewRosterHandler creates a RosterHandler.
func NewRosterHandler(roster RosterManager) *RosterHandler {
	return &RosterHandler{roster: roster}
}

// textValue accepts either "1,200" or 1200 in a JSON body. Text keeps the
// thousands-marker rules of typed input; a JSON number is read as a number,
// so 12.5 truncates to 12.
type textValue string

func (v *textValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = textValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	f, err := n.Float64()
	if err != nil {
		return err
	}
	*v = textValue(strconv.FormatFloat(math.Trunc(f), 'f', 0, 64))
	return nil
}

type addSurvivorRequest struct {
	Attack textValue `json:"attack"`
}

type defenseRequest struct {
	Defense textValue `json:"defense"`
}

type survivorsResponse struct {
	Survivors   []app.Survivor `json:"survivors"`
	TotalAttack int            `json:"totalAttack"`
}

func newSurvivorsResponse(survivors []app.Survivor) survivorsResponse {
	return survivorsResponse{Survivors: survivors, TotalAttack: roster.TotalAttack(survivors)}
}

type partiesResponse struct {
	Defense int                   `json:"defense"`
	Parties []app.QualifyingParty `json:"parties"`
}

// ListSurvivors returns the roster, highest attack first.
func (h *RosterHandler) ListSurvivors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newSurvivorsResponse(h.roster.List()))
}

// AddSurvivor adds one survivor from {"attack": "1,200"}.
func (h *RosterHandler) AddSurvivor(w http.ResponseWriter, r *http.Request) {
	var req addSurvivorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	survivors, err := h.roster.AddSurvivor(r.Context(), string(req.Attack))
	if errors.Is(err, service.ErrInvalidAttack) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to add survivor")
		writeError(w, http.StatusInternalServerError, "failed to save roster")
		return
	}

	writeJSON(w, http.StatusCreated, newSurvivorsResponse(survivors))
}

// RemoveSurvivor removes the survivor at the {index} path position.
func (h *RosterHandler) RemoveSurvivor(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	survivors, err := h.roster.RemoveSurvivor(r.Context(), index)
	if errors.Is(err, roster.ErrIndexOutOfRange) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		log.Error().Err(err).Int("index", index).Msg("Failed to remove survivor")
		writeError(w, http.StatusInternalServerError, "failed to save roster")
		return
	}

	writeJSON(w, http.StatusOK, newSurvivorsResponse(survivors))
}

// ClearSurvivors empties the roster.
func (h *RosterHandler) ClearSurvivors(w http.ResponseWriter, r *http.Request) {
	if err := h.roster.Clear(r.Context()); err != nil {
		log.Error().Err(err).Msg("Failed to clear roster")
		writeError(w, http.StatusInternalServerError, "failed to save roster")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BestParty finds the weakest party that beats {"defense": "15"}.
func (h *RosterHandler) BestParty(w http.ResponseWriter, r *http.Request) {
	var req defenseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.roster.CalculateParty(string(req.Defense)))
}

// QualifyingParties lists every distinct winning sum against {"defense": "15"}.
func (h *RosterHandler) QualifyingParties(w http.ResponseWriter, r *http.Request) {
	var req defenseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	defense, parties := h.roster.QualifyingParties(string(req.Defense))
	writeJSON(w, http.StatusOK, partiesResponse{Defense: defense, Parties: parties})
}
