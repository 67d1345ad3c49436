// Copyright (c) 2022 The Keymaker Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// Registry holds the network parameters a process runs with.  A process
// creates one Registry at startup, selects a network on it and hands it to
// every subsystem that needs parameters.
//
// Registry does no locking.  Select must complete before Current is called
// from any other goroutine, which is naturally the case when selection happens
// before the node starts its workers.  After that, any number of goroutines may
// call Current concurrently.
type Registry struct {
	params *Params
}

// NewRegistry returns a registry with no network selected.
func NewRegistry() *Registry {
	return &Registry{}
}

// Select constructs the parameters of net and makes them the active ones,
// replacing any earlier selection.  It returns a ParamsError when net is not a
// known network, in which case the previous selection, if any, is kept.
func (r *Registry) Select(net Net) error {
	params, err := New(net)
	if err != nil {
		return err
	}
	if r.params != nil && r.params.Net != net {
		log.Warnf("Replacing selected %s parameters with %s", r.params.Net, net)
	}
	r.params = params
	log.Infof("Selected %s network (genesis %v)", params.Name, params.GenesisHash)
	return nil
}

// Selected reports whether a network has been selected.
func (r *Registry) Selected() bool {
	return r.params != nil
}

// Net returns the selected network.  It panics when none is selected.
func (r *Registry) Net() Net {
	return r.active().Net
}

// Current returns a copy of the active parameters.  Callers may modify the
// copy freely; later calls are unaffected.  Calling Current before Select is a
// programming error and panics with ErrNotSelected.
func (r *Registry) Current() *Params {
	return r.active().Copy()
}

// active returns the selected parameters or panics.
func (r *Registry) active() *Params {
	if r.params == nil {
		panic(ErrNotSelected)
	}
	return r.params
}
