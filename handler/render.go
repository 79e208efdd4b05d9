package handler

import (
	"io"
	"net/http"

	"go-bank-console/common"
	"go-bank-console/model"
	"go-bank-console/service"
	"go-bank-console/web"
)

// Renderer draws a view template inside the console layout.
type Renderer interface {
	Render(w io.Writer, view string, page web.Page) error
}

// formState is the state of an empty form: loading while the session still
// has a submission of view in flight, idle otherwise.
func formState(inflight *service.Inflight, r *http.Request, view string) model.ViewState {
	if inflight.Loading(SessionID(r.Context()), view) {
		return model.Loading(service.MsgProcessing)
	}
	return model.Idle()
}

func render(rd Renderer, w http.ResponseWriter, view, title, active string, data interface{}) *common.AppError {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := rd.Render(w, view, web.Page{
		Title:  title,
		Active: active,
		Data:   data,
	})
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not render page", err)
	}
	return nil
}
