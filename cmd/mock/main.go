package main

import (
	"encoding/json"
	"flag"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"scrapquote/internal/dto/vpic_dto"
)

var trims = []string{"Base", "LE", "SE", "XLE", "Sport"}

func specsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil || q.Get("make") == "" || q.Get("model") == "" {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(vpic_dto.ResponseBody{Count: 0, Message: "No data", Results: []vpic_dto.Result{}})
		return
	}
	time.Sleep(100 * time.Millisecond)

	count := rand.Intn(len(trims)) + 1
	results := make([]vpic_dto.Result, 0, count)
	for i := 0; i < count; i++ {
		// between 900 and 2600 kg
		cw := 900 + rand.Intn(1700)
		results = append(results, vpic_dto.Result{
			Specs: []vpic_dto.Spec{
				{Name: "Make", Value: strings.ToUpper(q.Get("make"))},
				{Name: "Model", Value: q.Get("model") + " " + trims[i]},
				{Name: "Year", Value: strconv.Itoa(year)},
				{Name: "CW", Value: strconv.Itoa(cw)},
			},
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vpic_dto.ResponseBody{
		Count:   count,
		Message: "Results returned successfully",
		Results: results,
	})
}

func main() {
	addr := flag.String("addr", ":8081", "listen address")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	http.HandleFunc("/api/vehicles/GetCanadianVehicleSpecifications/", specsHandler)
	log.Info().Str("addr", *addr).Msg("Mock vPIC server running")
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal().Err(err).Msg("mock server crashed")
	}
}
