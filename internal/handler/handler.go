package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"scrapquote/internal/dto/weight_v1_dto"
	"scrapquote/internal/schema"

	"github.com/rs/zerolog/log"
)

const ontarioParam = "isOntario"

type Handler struct {
	quoter        quoter
	documentSaver documentSaver
}

func New(quoter quoter, documentSaver documentSaver) *Handler {
	return &Handler{
		quoter:        quoter,
		documentSaver: documentSaver,
	}
}

// GetVehicleWeight serves the curb weight of a vehicle, or its scrap price when isOntario is passed
func (h *Handler) GetVehicleWeight(w http.ResponseWriter, r *http.Request) {
	vars := r.URL.Query()

	query, err := parseVehicleQuery(vars)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if !vars.Has(ontarioParam) {
		weight, err := h.quoter.CurbWeight(r.Context(), query)
		if err != nil {
			log.Error().Err(err).Msg("get vehicle weight")
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, weightv1dto.WeightResponse{CurbWeight: weight})
		return
	}

	ontario, err := parseFlag(vars, ontarioParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	quote, err := h.quoter.ScrapQuote(r.Context(), query, ontario)
	if err != nil {
		log.Error().Err(err).Bool("ontario", ontario).Msg("get scrap price")
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, weightv1dto.ScrapPriceResponse{
		Results: weightv1dto.ScrapPrice{ScrapPrice: quote.Price},
	})
}

func parseVehicleQuery(vars url.Values) (schema.VehicleQuery, error) {
	year := vars.Get("year")
	makeName := vars.Get("make")
	modelName := vars.Get("model")

	var missing []string
	for _, p := range [][2]string{{"year", year}, {"make", makeName}, {"model", modelName}} {
		if p[1] == "" {
			missing = append(missing, p[0])
		}
	}
	if len(missing) != 0 {
		return schema.VehicleQuery{}, &MissingParameterError{Names: missing}
	}

	yearInt, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return schema.VehicleQuery{}, &InvalidYearError{Value: year}
	}

	return schema.VehicleQuery{
		Year:          yearInt,
		Make:          makeName,
		Model:         modelName,
		SpecificModel: vars.Get("specific_model"),
	}, nil
}

func parseFlag(vars url.Values, name string) (bool, error) {
	val := vars.Get(name)
	flag, err := strconv.ParseBool(strings.TrimSpace(val))
	if err != nil {
		return false, &InvalidFlagError{Name: name, Value: val}
	}
	return flag, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("couldn't encode a response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, weightv1dto.ErrorResponse{Error: err.Error()})
}
