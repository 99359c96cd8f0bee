package upstream

import "github.com/preston-bernstein/league-admin/internal/domain/teams"

type listResponse struct {
	Data []teams.Record `json:"data"`
}

type createRequest struct {
	Name string `json:"name"`
}

type createResponse struct {
	Data    *teams.Record `json:"data"`
	Message string        `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}
