package p24

type registerRequest struct {
	MerchantID    int    `json:"merchantId"`
	PosID         int    `json:"posId"`
	SessionID     string `json:"sessionId"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Description   string `json:"description"`
	Email         string `json:"email"`
	Client        string `json:"client,omitempty"`
	Country       string `json:"country"`
	Language      string `json:"language"`
	URLReturn     string `json:"urlReturn"`
	URLStatus     string `json:"urlStatus"`
	TimeLimit     int    `json:"timeLimit"`
	Channel       int    `json:"channel,omitempty"`
	WaitForResult bool   `json:"waitForResult"`
	Encoding      string `json:"encoding"`
	Sign          string `json:"sign"`
}

type registerResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
	ResponseCode int `json:"responseCode"`
}

type verifyRequest struct {
	MerchantID int    `json:"merchantId"`
	PosID      int    `json:"posId"`
	SessionID  string `json:"sessionId"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	OrderID    int64  `json:"orderId"`
	Sign       string `json:"sign"`
}

type verifyResponse struct {
	Data struct {
		Status string `json:"status"`
	} `json:"data"`
	ResponseCode int `json:"responseCode"`
}

type transactionResponse struct {
	Data struct {
		Statement   string `json:"statement"`
		OrderID     int64  `json:"orderId"`
		SessionID   string `json:"sessionId"`
		Status      int    `json:"status"`
		Amount      int64  `json:"amount"`
		Currency    string `json:"currency"`
		Date        string `json:"date"`
		ClientEmail string `json:"clientEmail"`
	} `json:"data"`
	ResponseCode int `json:"responseCode"`
}

type testAccessResponse struct {
	Data  bool   `json:"data"`
	Error string `json:"error"`
}

type errorResponse struct {
	Error any `json:"error"`
	Code  int `json:"code"`
}

// Field order below is the order the gateway hashes them in.

type registerSignFields struct {
	SessionID  string `json:"sessionId"`
	MerchantID int    `json:"merchantId"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	CRC        string `json:"crc"`
}

type verifySignFields struct {
	SessionID string `json:"sessionId"`
	OrderID   int64  `json:"orderId"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	CRC       string `json:"crc"`
}

type notificationSignFields struct {
	MerchantID   int    `json:"merchantId"`
	PosID        int    `json:"posId"`
	SessionID    string `json:"sessionId"`
	Amount       int64  `json:"amount"`
	OriginAmount int64  `json:"originAmount"`
	Currency     string `json:"currency"`
	OrderID      int64  `json:"orderId"`
	MethodID     int    `json:"methodId"`
	Statement    string `json:"statement"`
	CRC          string `json:"crc"`
}
