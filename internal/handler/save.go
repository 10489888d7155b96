package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"

	"scrapquote/internal/dto/weight_v1_dto"
	"scrapquote/internal/schema"

	"github.com/rs/zerolog/log"
)

// SaveData stores a pickup request
func (h *Handler) SaveData(w http.ResponseWriter, r *http.Request) {
	if !isJSON(r) {
		writeError(w, http.StatusBadRequest, errors.New("Request must be in JSON format"))
		return
	}

	var request weightv1dto.SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("Invalid request body"))
		return
	}

	id, err := h.documentSaver.Save(r.Context(), toDocument(request))
	if err != nil {
		log.Error().Err(err).Msg("save data")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, weightv1dto.SaveResponse{Status: "success", ID: id})
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/json" ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}

func toDocument(req weightv1dto.SaveRequest) schema.PickupDocument {
	return schema.PickupDocument{
		Specs: []any{
			req.Year,
			req.Make,
			req.Model,
			req.SpecificModel,
		},
		Location: []any{
			req.Province,
			req.City,
			req.StreetNumber,
			req.StreetName,
			req.UnitInfo,
			req.PostalCode,
		},
		PickupDetails: []any{
			req.PickupDate,
			req.PickupTime,
			req.PickupName,
			req.PhoneNumber,
		},
		IsRunning:     req.IsRunning,
		AcceptedOffer: req.AcceptedOffer,
		ScrapValue:    req.ScrapValue,
		Notes:         req.Notes,
	}
}
