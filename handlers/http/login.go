package httpHandler

import (
	"net/http"

	"kanban-server/usecases"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	useCase *usecases.LoginUseCase
}

func NewLoginHandler(useCase *usecases.LoginUseCase) *LoginHandler {
	return &LoginHandler{useCase: useCase}
}

// Login handles POST /api/v1/auth/login
func (h *LoginHandler) Login(c *gin.Context) {
	var req usecases.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	result, err := h.useCase.Execute(req)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, result, "login successful")
}
