package response

import "resto-booking/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	SyncStatus  string `json:"sync_status"`
}

type MeResponse struct {
	User *queries.UserView `json:"user"`
}
