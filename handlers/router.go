package handlers

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/gorilla/mux"

	"github.com/mapleleafu/gamenight-bot/models"
	"github.com/mapleleafu/gamenight-bot/responses"
	"github.com/mapleleafu/gamenight-bot/utils"
)

var userIDRe = regexp.MustCompile("^[0-9]+$")

// NewRouter builds the small ops API that rides along with the bot: a
// health probe, a status summary, and a binding lookup for debugging who
// the bot thinks someone is.
func NewRouter(reg *Registry, env *Env) *mux.Router {
	start := time.Now()
	r := mux.NewRouter()

	r.HandleFunc("/api/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.HandleSuccess(w, models.SuccessResponse(map[string]string{"status": "ok"}))
	}).Methods("GET")

	r.HandleFunc("/api/status", func(w http.ResponseWriter, req *http.Request) {
		bound, err := env.Store.Count(req.Context())
		if err != nil {
			log.Printf("status: count users: %v", err)
			utils.HandleError(w, responses.InternalServerError{Msg: "Failed to count user bindings."})
			return
		}
		utils.HandleSuccess(w, models.SuccessResponse(map[string]interface{}{
			"uptime":      time.Since(start).Round(time.Second).String(),
			"commands":    len(reg.All()),
			"bound_users": bound,
		}))
	}).Methods("GET")

	r.HandleFunc("/api/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := mux.Vars(req)["id"]
		if !userIDRe.MatchString(id) {
			utils.HandleError(w, responses.BadRequestError{Msg: "User ids are numeric."})
			return
		}
		name, err := env.Store.UserName(req.Context(), id)
		if err != nil {
			var ue responses.UserError
			if errors.As(err, &ue) {
				utils.HandleError(w, responses.NotFoundError{Msg: "No name bound for that user."})
				return
			}
			log.Printf("users: look up %s: %v", id, err)
			utils.HandleError(w, responses.InternalServerError{Msg: "Failed to look up the user."})
			return
		}
		utils.HandleSuccess(w, models.SuccessResponse(models.User{ID: id, GLName: name}))
	}).Methods("GET")

	return r
}
