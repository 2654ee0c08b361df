package domain

import "encoding/json"

type Book struct {
	ID        int32         `json:"id"`
	Title     string        `json:"title"`
	Author    string        `json:"author"`
	ISBN      string        `json:"isbn"`
	Inventory CopyInventory `json:"inventory"`
}

// CopyInventory tracks a book's physical copies in aggregate. The counters are
// unexported so every mutation goes through a guarded method and the invariant
// available + loaned + damaged <= total can never be bypassed.
type CopyInventory struct {
	total     int32
	available int32
	loaned    int32
	damaged   int32
}

// NewCopyInventory initializes the inventory for a newly registered book:
// every copy starts available.
func NewCopyInventory(total int32) (CopyInventory, error) {
	if total < 1 {
		return CopyInventory{}, Validationf("a book must have at least one copy")
	}
	return CopyInventory{total: total, available: total}, nil
}

// RestoreCopyInventory rebuilds an inventory from persisted counters.
// Administrative edits may leave the sum below the total, so only
// non-negativity and the upper bound are checked.
func RestoreCopyInventory(total, available, loaned, damaged int32) (CopyInventory, error) {
	if total < 0 || available < 0 || loaned < 0 || damaged < 0 {
		return CopyInventory{}, Invariantf("copy counters cannot be negative")
	}
	if available+loaned+damaged > total {
		return CopyInventory{}, Invariantf("sum of copy counters exceeds the total of %d", total)
	}
	return CopyInventory{total: total, available: available, loaned: loaned, damaged: damaged}, nil
}

func (ci CopyInventory) Total() int32     { return ci.total }
func (ci CopyInventory) Available() int32 { return ci.available }
func (ci CopyInventory) Loaned() int32    { return ci.loaned }
func (ci CopyInventory) Damaged() int32   { return ci.damaged }

// ReserveCopy moves one copy from available to loaned when a loan opens.
func (ci *CopyInventory) ReserveCopy() error {
	if ci.available <= 0 {
		return Conflictf("no copies available for this book")
	}
	ci.available--
	ci.loaned++
	return nil
}

// ReleaseCopy moves one copy back from loaned to available on a normal return.
func (ci *CopyInventory) ReleaseCopy() error {
	if ci.loaned <= 0 {
		return Invariantf("book has no loaned copies to release")
	}
	ci.loaned--
	ci.available++
	return nil
}

// MarkDamaged moves one loaned copy into the damaged count.
func (ci *CopyInventory) MarkDamaged() error {
	if ci.loaned <= 0 {
		return Invariantf("book has no loaned copies to mark damaged")
	}
	ci.loaned--
	ci.damaged++
	return nil
}

// MarkLost removes one loaned copy from the inventory entirely: the total
// shrinks along with the loaned count.
func (ci *CopyInventory) MarkLost() error {
	if ci.loaned <= 0 {
		return Invariantf("book has no loaned copies to mark lost")
	}
	ci.loaned--
	ci.total--
	return nil
}

// Resize applies an administrative edit. A nil field is left untouched.
// Raising or lowering the total shifts the available count by the same
// difference, floored at zero, matching how stock corrections behave when
// copies are bought or discarded. The sum may end up below the new total
// (under-filled inventory is tolerated on edits) but never above it.
func (ci *CopyInventory) Resize(total, available, loaned, damaged *int32) error {
	next := *ci
	if total != nil {
		if *total < 1 {
			return Validationf("total copies must be at least 1")
		}
		diff := *total - next.total
		next.total = *total
		next.available += diff
		if next.available < 0 {
			next.available = 0
		}
	}
	if available != nil {
		next.available = *available
	}
	if loaned != nil {
		next.loaned = *loaned
	}
	if damaged != nil {
		next.damaged = *damaged
	}
	if next.available < 0 || next.loaned < 0 || next.damaged < 0 {
		return Invariantf("copy counters cannot be negative")
	}
	if next.available+next.loaned+next.damaged > next.total {
		return Invariantf("sum of copy counters cannot exceed the total of %d", next.total)
	}
	*ci = next
	return nil
}

type copyInventoryJSON struct {
	Total     int32 `json:"total_copies"`
	Available int32 `json:"available"`
	Loaned    int32 `json:"loaned"`
	Damaged   int32 `json:"damaged"`
}

func (ci CopyInventory) MarshalJSON() ([]byte, error) {
	return json.Marshal(copyInventoryJSON{
		Total:     ci.total,
		Available: ci.available,
		Loaned:    ci.loaned,
		Damaged:   ci.damaged,
	})
}

func (ci *CopyInventory) UnmarshalJSON(data []byte) error {
	var raw copyInventoryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	restored, err := RestoreCopyInventory(raw.Total, raw.Available, raw.Loaned, raw.Damaged)
	if err != nil {
		return err
	}
	*ci = restored
	return nil
}
