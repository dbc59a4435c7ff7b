package push

import (
	"sync"
)

// Registry 接收者到在线连接的映射，每个接收者最多一条连接
// 这里只是一个提示，找到了连接也不代表一定能发出去
type Registry struct {
	mu       sync.RWMutex
	channels map[int64]Channel
}

func NewRegistry() *Registry {
	return &Registry{
		channels: make(map[int64]Channel),
	}
}

// Register 返回被顶掉的旧连接，调用方负责关闭它
func (r *Registry) Register(ch Channel) (Channel, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.channels[ch.ReceiverID()]
	r.channels[ch.ReceiverID()] = ch
	if ok && old.ID() == ch.ID() {
		return nil, false
	}
	return old, ok
}

// Unregister 只有当前登记的就是 ch 的时候才会删除，避免旧连接断开的时候删掉了新连接
func (r *Registry) Unregister(ch Channel) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.channels[ch.ReceiverID()]
	if !ok || cur.ID() != ch.ID() {
		return false
	}
	delete(r.channels, ch.ReceiverID())
	return true
}

func (r *Registry) Lookup(receiverID int64) (Channel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ch, ok := r.channels[receiverID]
	return ch, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.channels)
}
