package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/luisapuppin/escala360/pkg/response"
)

// Códigos de negócio comuns
const (
	codeInvalidParams = 10001
)

// MustGetID lê o parâmetro de rota :id como inteiro positivo.
// Se inválido, escreve 400 e retorna false; o chamador deve retornar.
func MustGetID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, codeInvalidParams, "id inválido")
		return 0, false
	}
	return id, true
}
