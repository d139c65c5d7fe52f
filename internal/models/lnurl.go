package models

// LUD-03 wire shapes. Protocol-level errors are served with HTTP 200,
// so these are plain response bodies rather than HTTP error codes.

type LNURLWithdrawResponse struct {
	Tag                string `json:"tag"`
	Callback           string `json:"callback"`
	K1                 string `json:"k1"`
	MinWithdrawable    int64  `json:"minWithdrawable"`
	MaxWithdrawable    int64  `json:"maxWithdrawable"`
	DefaultDescription string `json:"defaultDescription"`
}

type LNURLStatusResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

func LNURLOK() LNURLStatusResponse {
	return LNURLStatusResponse{Status: "OK"}
}

func LNURLError(reason string) LNURLStatusResponse {
	return LNURLStatusResponse{Status: "ERROR", Reason: reason}
}
