package server

import (
	"Noted/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	Category *handler.Category
	Note     *handler.Note
}
