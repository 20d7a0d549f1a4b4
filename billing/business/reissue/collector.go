package reissue

import "encore.app/billing/model"

// BillLicenceKeyFunc decides when two bill licences generated during one
// run are the same licence. The legacy key collapses everything for one
// billing account onto a single bill licence; it is kept as the default so
// behaviour can be verified against real data before tightening, but the
// key is injectable precisely because the legacy choice looks too wide.
type BillLicenceKeyFunc func(bill *model.Bill, source *model.BillLicence) string

// LegacyBillLicenceKey reuses a generated bill licence whenever the billing
// account matches, regardless of which destination bill or licence it was
// generated for.
func LegacyBillLicenceKey(bill *model.Bill, source *model.BillLicence) string {
	return bill.BillingAccountID
}

// BillScopedLicenceKey reuses a generated bill licence only within one
// destination bill and one licence reference.
func BillScopedLicenceKey(bill *model.Bill, source *model.BillLicence) string {
	return bill.ID + "/" + source.LicenceRef
}

// collector accumulates the output graph of one reissue run and implements
// the create-or-reuse rule at the bill and bill-licence levels. It is the
// single place new records are appended, so construction stays
// order-independent for the caller.
type collector struct {
	bills          []*model.Bill
	billLicences   []*model.BillLicence
	transactions   []model.Transaction
	billLicenceKey BillLicenceKeyFunc
	licenceIndex   map[string]*model.BillLicence
}

func newCollector(billLicenceKey BillLicenceKeyFunc) *collector {
	if billLicenceKey == nil {
		billLicenceKey = LegacyBillLicenceKey
	}
	return &collector{
		billLicenceKey: billLicenceKey,
		licenceIndex:   make(map[string]*model.BillLicence),
	}
}

// billFor returns the already generated bill for the (billing account,
// external invoice) pair, or builds and records a new one. The same pair is
// seen once per bill licence, and all of them must land on one bill.
func (c *collector) billFor(billingAccountID, externalID string, build func() model.Bill) *model.Bill {
	for _, bill := range c.bills {
		if bill.BillingAccountID == billingAccountID && bill.ExternalID == externalID {
			return bill
		}
	}

	bill := build()
	c.bills = append(c.bills, &bill)
	return &bill
}

// billLicenceFor returns the already generated bill licence for the
// configured dedup key, or builds and records a new one.
func (c *collector) billLicenceFor(bill *model.Bill, source *model.BillLicence, build func() model.BillLicence) *model.BillLicence {
	key := c.billLicenceKey(bill, source)
	if existing, ok := c.licenceIndex[key]; ok {
		return existing
	}

	licence := build()
	c.billLicences = append(c.billLicences, &licence)
	c.licenceIndex[key] = &licence
	return &licence
}

func (c *collector) addTransaction(trx model.Transaction) {
	c.transactions = append(c.transactions, trx)
}

func (c *collector) result() *model.ReissueResult {
	res := &model.ReissueResult{
		Bills:        make([]model.Bill, len(c.bills)),
		BillLicences: make([]model.BillLicence, len(c.billLicences)),
		Transactions: c.transactions,
	}
	for i, bill := range c.bills {
		res.Bills[i] = *bill
	}
	for i, licence := range c.billLicences {
		res.BillLicences[i] = *licence
	}
	return res
}
