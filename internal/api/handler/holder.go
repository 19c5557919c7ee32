package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jhooc77/gringotts/internal/model"
)

// holderFromPath builds an account holder from the {type} and {id} path
// variables
func holderFromPath(r *http.Request) (model.AccountHolder, error) {
	vars := mux.Vars(r)

	t := model.HolderType(vars["type"])
	if !model.ValidHolderType(t) {
		return model.AccountHolder{}, model.ErrInvalidHolder
	}
	id := vars["id"]
	if id == "" {
		return model.AccountHolder{}, model.ErrInvalidHolder
	}

	return model.AccountHolder{Type: t, ID: id}, nil
}
