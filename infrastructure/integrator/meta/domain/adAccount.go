package metadomain

type AdAccount struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"account_id"`
	Name          string    `json:"name"`
	AccountStatus *int      `json:"account_status"`
	Balance       *string   `json:"balance"`
	Currency      string    `json:"currency"`
	Business      *Business `json:"business"`
}

type Business struct {
	ID string `json:"id"`
}

// UserWithAdAccounts é a resposta de me?fields=...,adaccounts{...}
type UserWithAdAccounts struct {
	ID         string                   `json:"id"`
	Name       string                   `json:"name"`
	AdAccounts *ListResponse[AdAccount] `json:"adaccounts"`
}

type Audience struct {
	ID                         string `json:"id"`
	Name                       string `json:"name"`
	Subtype                    string `json:"subtype"`
	ApproximateCountLowerBound *int64 `json:"approximate_count_lower_bound"`
	ApproximateCountUpperBound *int64 `json:"approximate_count_upper_bound"`
}
