// Package ivr answers inbound calls with a three option menu and forwards the caller.
package ivr

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

const (
	MenuPath  = "/ivr"
	InputPath = "/handle_input"

	menuPrompt    = "Press 1 to sell your vehicle, Press 2 for unwanted vehicle removal, Press 3 for used auto parts."
	choicePrompt  = "Please enter your choice."
	invalidChoice = "Invalid choice. I will repeat the message."
)

// Destinations phone numbers calls are forwarded to
type Destinations struct {
	Sales   string
	Removal string
	Parts   string
}

type route struct {
	announcement string
	number       func(Destinations) string
}

var routes = map[string]route{
	"1": {
		announcement: "Connecting you to the vehicle sales department.",
		number:       func(d Destinations) string { return d.Sales },
	},
	"2": {
		announcement: "Connecting you to the unwanted vehicle removal department.",
		number:       func(d Destinations) string { return d.Removal },
	},
	"3": {
		announcement: "Connecting you to the used auto parts department.",
		number:       func(d Destinations) string { return d.Parts },
	},
}

type Router struct {
	destinations Destinations
}

func New(destinations Destinations) *Router {
	return &Router{destinations: destinations}
}

// Menu greets the caller and gathers one digit
func (rt *Router) Menu(w http.ResponseWriter, r *http.Request) {
	writeTwiML(w, Response{Verbs: []any{
		Say{Text: menuPrompt},
		Gather{
			NumDigits: 1,
			Action:    InputPath,
			Method:    http.MethodPost,
			Verbs:     []any{Say{Text: choicePrompt}},
		},
	}})
}

// HandleInput forwards the call by the pressed digit or repeats the menu
func (rt *Router) HandleInput(w http.ResponseWriter, r *http.Request) {
	digits := r.FormValue("Digits")

	selected, ok := routes[digits]
	if !ok {
		log.Info().Str("digits", digits).Msg("invalid ivr choice")
		writeTwiML(w, Response{Verbs: []any{
			Say{Text: invalidChoice},
			Redirect{URL: MenuPath},
		}})
		return
	}

	number := selected.number(rt.destinations)
	if number == "" {
		log.Warn().Str("digits", digits).Msg("ivr destination is not configured")
	}
	log.Info().Str("digits", digits).Str("number", number).Msg("forwarding call")

	writeTwiML(w, Response{Verbs: []any{
		Say{Text: selected.announcement},
		Dial{Number: number},
	}})
}

func writeTwiML(w http.ResponseWriter, resp Response) {
	body, err := resp.Marshal()
	if err != nil {
		log.Error().Err(err).Msg("couldn't render twiml")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("couldn't write twiml")
	}
}
