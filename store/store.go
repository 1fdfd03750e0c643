package store

import (
	"errors"

	"github.com/golang/glog"
)

var (
	// ErrAlreadyExist error returns when Add attempts to add already existing item
	ErrAlreadyExist = errors.New("already exists")
	// ErrNotFound error returns when Get or Remove address a non existing item
	ErrNotFound = errors.New("not found")
)

type storeOp uint8

const (
	addItem storeOp = iota + 1
	removeItem
	getItem
	listItems
)

// Storable is anything keyed by a string, report series are keyed by the algorithm name.
type Storable interface {
	Key() string
}

var _ Storable = &item{}

type item struct {
	key string
}

func (i *item) Key() string {
	return i.key
}

// Manager is a keyed store safe for concurrent use, all operations are
// serialized through a single manager goroutine.
type Manager interface {
	Add(Storable) error
	Remove(Storable) error
	// List returns items in the order they were added.
	List() []Storable
	Get(string) (Storable, error)
	Stop()
}

var _ Manager = &itemStore{}

type mgrReply struct {
	item []Storable
	err  error
}

type storeCh struct {
	op      storeOp
	item    Storable
	replyCh chan mgrReply
}

type itemStore struct {
	stopCh chan struct{}
	opCh   chan storeCh
}

func (s *itemStore) do(op storeOp, i Storable) mgrReply {
	repl := make(chan mgrReply)
	s.opCh <- storeCh{
		op:      op,
		item:    i,
		replyCh: repl,
	}

	return <-repl
}

func (s *itemStore) Add(i Storable) error {
	return s.do(addItem, i).err
}

func (s *itemStore) Remove(i Storable) error {
	return s.do(removeItem, i).err
}

func (s *itemStore) Get(key string) (Storable, error) {
	r := s.do(getItem, &item{key: key})
	if r.err != nil {
		return nil, r.err
	}

	return r.item[0], nil
}

func (s *itemStore) List() []Storable {
	return s.do(listItems, nil).item
}

func (s *itemStore) Stop() {
	close(s.stopCh)
}

func (s *itemStore) manager() {
	items := make(map[string]Storable)
	order := make([]string, 0)
	for {
		select {
		case <-s.stopCh:
			return
		case msg := <-s.opCh:
			switch msg.op {
			case addItem:
				glog.V(6).Infof("Adding item: %s", msg.item.Key())
				if _, ok := items[msg.item.Key()]; ok {
					msg.replyCh <- mgrReply{err: ErrAlreadyExist}
					continue
				}
				items[msg.item.Key()] = msg.item
				order = append(order, msg.item.Key())
				msg.replyCh <- mgrReply{}
			case removeItem:
				glog.V(6).Infof("Removing item: %s", msg.item.Key())
				if _, ok := items[msg.item.Key()]; !ok {
					msg.replyCh <- mgrReply{err: ErrNotFound}
					continue
				}
				delete(items, msg.item.Key())
				for i, k := range order {
					if k == msg.item.Key() {
						order = append(order[:i], order[i+1:]...)
						break
					}
				}
				msg.replyCh <- mgrReply{}
			case getItem:
				glog.V(6).Infof("Getting item: %s", msg.item.Key())
				it, ok := items[msg.item.Key()]
				if !ok {
					msg.replyCh <- mgrReply{err: ErrNotFound}
					continue
				}
				msg.replyCh <- mgrReply{item: []Storable{it}}
			case listItems:
				l := make([]Storable, len(order))
				for i, k := range order {
					l[i] = items[k]
				}
				msg.replyCh <- mgrReply{item: l}
			}
		}
	}
}

// NewStore returns a new instance of a store, any object which is compatible
// with the interface Storable, can be stored in the store.
func NewStore() Manager {
	s := &itemStore{
		stopCh: make(chan struct{}),
		opCh:   make(chan storeCh),
	}
	// Starting store manager
	go s.manager()

	return s
}
