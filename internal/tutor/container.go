package tutor

import "github.com/saulo-duarte/tutor-lambda/internal/llm"

type TutorContainer struct {
	Service Service
	Handler *Handler
}

func NewTutorContainer(provider llm.Provider) *TutorContainer {
	service := NewService(provider)
	handler := NewHandler(service)

	return &TutorContainer{
		Service: service,
		Handler: handler,
	}
}
