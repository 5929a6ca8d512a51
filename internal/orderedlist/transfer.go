package orderedlist

import "fmt"

// Transfer moves the item at index from src to the end of dst. convert
// produces the destination's copy of the item (for example with pool flags
// flipped); nil keeps it as is. Both lists are validated before either is
// touched, so the item is never in both lists or in neither.
func Transfer[T any](src, dst *Model[T], at int, convert func(T) T) (TransferPatch, error) {
	it, err := src.At(at)
	if err != nil {
		return TransferPatch{}, err
	}
	if convert != nil {
		it = convert(it)
	}
	if err := dst.checkUnique(it); err != nil {
		return TransferPatch{}, fmt.Errorf("transfer: %w", err)
	}
	_, del, err := src.Delete(at)
	if err != nil {
		return TransferPatch{}, err
	}
	ins, err := dst.Insert(it, Append)
	if err != nil {
		return TransferPatch{}, err
	}
	return TransferPatch{Source: del, Destination: ins}, nil
}
