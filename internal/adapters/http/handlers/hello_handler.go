package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/demo-bd/internal/adapters/http/dto"
)

const helloMessage = "Olá Mundo!"

// Hello handles GET /hello/hello.
func Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.StatusResponse{Message: helloMessage})
}
