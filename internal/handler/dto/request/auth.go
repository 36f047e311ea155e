package request

// GoogleCallbackRequest carries the authorization code Google appends to the
// redirect.
type GoogleCallbackRequest struct {
	Code  string `form:"code" binding:"required"`
	State string `form:"state"`
}
