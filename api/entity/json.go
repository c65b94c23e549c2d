package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrExtraFieldCollision is returned when an entity's extension bag holds a
// key that collides with one of its typed fields. Collisions are rejected
// rather than resolved by precedence.
var ErrExtraFieldCollision = errors.New("extension field collides with typed field")

var fieldNameCache sync.Map // reflect.Type -> map[string]bool

// typedFieldNames returns the set of json keys produced by the typed fields
// of a struct type, excluding the untagged extension bag.
func typedFieldNames(t reflect.Type) map[string]bool {
	if cached, ok := fieldNameCache.Load(t); ok {
		return cached.(map[string]bool)
	}
	names := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name := f.Name
		if tag != "" {
			if comma := indexComma(tag); comma >= 0 {
				tag = tag[:comma]
			}
			if tag != "" {
				name = tag
			}
		}
		names[name] = true
	}
	fieldNameCache.Store(t, names)
	return names
}

func indexComma(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			return i
		}
	}
	return -1
}

// marshalWithExtra serializes the typed fields of v and splices the
// extension bag back into the object. v must be an alias type without a
// custom marshaler.
func marshalWithExtra(v any, extra map[string]any) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return base, nil
	}
	known := typedFieldNames(reflect.TypeOf(v))
	var merged map[string]any
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if known[k] {
			return nil, fmt.Errorf("%w: %q", ErrExtraFieldCollision, k)
		}
		merged[k] = val
	}
	return json.Marshal(merged)
}

// unmarshalWithExtra decodes data into v (a pointer to an alias type) and
// returns whatever keys the wire object carried beyond v's typed fields.
func unmarshalWithExtra(data []byte, v any) (map[string]any, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for name := range typedFieldNames(reflect.TypeOf(v).Elem()) {
		delete(all, name)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

func (a Account) MarshalJSON() ([]byte, error) {
	type plain Account
	return marshalWithExtra(plain(a), a.Extra)
}

func (a *Account) UnmarshalJSON(data []byte) error {
	type plain Account
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	p.Extra = extra
	*a = Account(p)
	return nil
}

func (b Balance) MarshalJSON() ([]byte, error) {
	type plain Balance
	return marshalWithExtra(plain(b), b.Extra)
}

func (b *Balance) UnmarshalJSON(data []byte) error {
	type plain Balance
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	p.Extra = extra
	*b = Balance(p)
	return nil
}

func (c Coupon) MarshalJSON() ([]byte, error) {
	type plain Coupon
	return marshalWithExtra(plain(c), c.Extra)
}

func (c *Coupon) UnmarshalJSON(data []byte) error {
	type plain Coupon
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	p.Extra = extra
	*c = Coupon(p)
	return nil
}

func (c Customer) MarshalJSON() ([]byte, error) {
	type plain Customer
	return marshalWithExtra(plain(c), c.Extra)
}

func (c *Customer) UnmarshalJSON(data []byte) error {
	type plain Customer
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	p.Extra = extra
	*c = Customer(p)
	return nil
}

func (d Dispute) MarshalJSON() ([]byte, error) {
	type plain Dispute
	return marshalWithExtra(plain(d), d.Extra)
}

func (d *Dispute) UnmarshalJSON(data []byte) error {
	type plain Dispute
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	p.Extra = extra
	*d = Dispute(p)
	return nil
}

func (i Invoice) MarshalJSON() ([]byte, error) {
	type plain Invoice
	return marshalWithExtra(plain(i), i.Extra)
}

func (i *Invoice) UnmarshalJSON(data []byte) error {
	type plain Invoice
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	p.Extra = extra
	*i = Invoice(p)
	return nil
}

func (i InvoiceItem) MarshalJSON() ([]byte, error) {
	type plain InvoiceItem
	return marshalWithExtra(plain(i), i.Extra)
}

func (i *InvoiceItem) UnmarshalJSON(data []byte) error {
	type plain InvoiceItem
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	p.Extra = extra
	*i = InvoiceItem(p)
	return nil
}

func (l PaymentLink) MarshalJSON() ([]byte, error) {
	type plain PaymentLink
	return marshalWithExtra(plain(l), l.Extra)
}

func (l *PaymentLink) UnmarshalJSON(data []byte) error {
	type plain PaymentLink
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	p.Extra = extra
	*l = PaymentLink(p)
	return nil
}

func (pi PaymentIntent) MarshalJSON() ([]byte, error) {
	type plain PaymentIntent
	return marshalWithExtra(plain(pi), pi.Extra)
}

func (pi *PaymentIntent) UnmarshalJSON(data []byte) error {
	type plain PaymentIntent
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	p.Extra = extra
	*pi = PaymentIntent(p)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	type plain Price
	return marshalWithExtra(plain(p), p.Extra)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	type plain Price
	var pl plain
	extra, err := unmarshalWithExtra(data, &pl)
	if err != nil {
		return err
	}
	pl.Extra = extra
	*p = Price(pl)
	return nil
}

func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return marshalWithExtra(plain(p), p.Extra)
}

func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	var pl plain
	extra, err := unmarshalWithExtra(data, &pl)
	if err != nil {
		return err
	}
	pl.Extra = extra
	*p = Product(pl)
	return nil
}

func (r Refund) MarshalJSON() ([]byte, error) {
	type plain Refund
	return marshalWithExtra(plain(r), r.Extra)
}

func (r *Refund) UnmarshalJSON(data []byte) error {
	type plain Refund
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	p.Extra = extra
	*r = Refund(p)
	return nil
}

func (s Subscription) MarshalJSON() ([]byte, error) {
	type plain Subscription
	return marshalWithExtra(plain(s), s.Extra)
}

func (s *Subscription) UnmarshalJSON(data []byte) error {
	type plain Subscription
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	p.Extra = extra
	*s = Subscription(p)
	return nil
}
