package stripegw

import (
	"github.com/stripe/stripe-go/v72/account"
	"github.com/stripe/stripe-go/v72/balance"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
)

func (c client) GetAccount() (entity.Account, error) {
	if err := c.ready(); err != nil {
		return entity.Account{}, err
	}
	acct, err := account.Get()
	if err != nil {
		return entity.Account{}, mapErr(err)
	}
	return decode(acct.LastResponse, fromAccount(acct)), nil
}

func (c client) GetBalance() (entity.Balance, error) {
	if err := c.ready(); err != nil {
		return entity.Balance{}, err
	}
	bal, err := balance.Get(nil)
	if err != nil {
		return entity.Balance{}, mapErr(err)
	}
	return decode(bal.LastResponse, fromBalance(bal)), nil
}
