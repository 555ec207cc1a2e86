package api

import "net/http"

const healthMessage = "Server Up and Running !!"

func RootHandler(w http.ResponseWriter, r *http.Request) {
	respondWithMessage(w, http.StatusOK, healthMessage)
}
