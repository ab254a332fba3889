// Package registry - Test đăng ký và truy xuất item thread-safe.
package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("counter", 42)
	require.NoError(t, err)
	assert.True(t, isNew, "lần đăng ký đầu phải là item mới")

	got, exists := r.Get("counter")
	require.True(t, exists)
	assert.Equal(t, 42, got)

	isNew, err = r.Register("counter", 99)
	require.NoError(t, err)
	assert.False(t, isNew, "đăng ký trùng tên phải là ghi đè")

	got, _ = r.Get("counter")
	assert.Equal(t, 99, got, "giá trị phải bị ghi đè")
}

func TestRegistry_GetKhongTonTai(t *testing.T) {
	r := NewRegistry[string]()
	_, exists := r.Get("khong-co")
	assert.False(t, exists)
}

func TestRegistry_RegisterTenRong(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	assert.Error(t, err, "tên rỗng phải bị từ chối")
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0
	creator := func() (int, error) {
		calls++
		return 7, nil
	}

	got, err := r.GetOrCreate("lazy", creator)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, 1, calls)

	got, err = r.GetOrCreate("lazy", creator)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, 1, calls, "item đã tồn tại thì creator không được gọi lại")
}

func TestRegistry_Update(t *testing.T) {
	r := NewRegistry[int]()
	_, _ = r.Register("counter", 1)

	err := r.Update("counter", func(current int) (int, error) { return current + 1, nil })
	require.NoError(t, err)

	got, _ := r.Get("counter")
	assert.Equal(t, 2, got)

	err = r.Update("khong-co", func(current int) (int, error) { return current, nil })
	assert.Error(t, err, "update item không tồn tại phải trả về lỗi")
}

func TestRegistry_ClearVaClearAll(t *testing.T) {
	r := NewRegistry[int]()
	_, _ = r.Register("a", 1)
	_, _ = r.Register("b", 2)

	deleted, err := r.Clear("a", nil)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = r.Clear("a", nil)
	require.NoError(t, err)
	assert.False(t, deleted, "xóa item không tồn tại phải trả về false")

	cleaned := 0
	count, err := r.ClearAll(func(int) error { cleaned++; return nil })
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, cleaned, "cleanup phải được gọi cho từng item còn lại")

	_, exists := r.Get("b")
	assert.False(t, exists)
}

func TestRegistry_DongThoi(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = r.Register("shared", n)
			_, _ = r.Get("shared")
		}(i)
	}
	wg.Wait()

	_, exists := r.Get("shared")
	assert.True(t, exists)
}
