package graph

// listResponse is the OData collection envelope returned by Graph.
type listResponse[T any] struct {
	Value    []T    `json:"value"`
	NextLink string `json:"@odata.nextLink"`
}

type SubscribedSku struct {
	SkuID         string       `json:"skuId"`
	SkuPartNumber string       `json:"skuPartNumber"`
	PrepaidUnits  PrepaidUnits `json:"prepaidUnits"`
	ConsumedUnits int64        `json:"consumedUnits"`
}

type PrepaidUnits struct {
	Enabled   int64 `json:"enabled"`
	Suspended int64 `json:"suspended"`
	Warning   int64 `json:"warning"`
}

type User struct {
	UserPrincipalName string          `json:"userPrincipalName"`
	SignInActivity    *SignInActivity `json:"signInActivity"`
}

type SignInActivity struct {
	LastSignInDateTime *string `json:"lastSignInDateTime"`
}

type LicenseDetail struct {
	SkuID         string `json:"skuId"`
	SkuPartNumber string `json:"skuPartNumber"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
