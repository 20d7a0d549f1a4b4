package model

// ReissueResult is the graph of records produced by one reissue run. It is
// accumulated in memory and handed to the persistence layer in one piece;
// nothing is written until the whole run has succeeded.
type ReissueResult struct {
	Bills        []Bill        `json:"bills"`
	BillLicences []BillLicence `json:"bill_licences"`
	Transactions []Transaction `json:"transactions"`
}
