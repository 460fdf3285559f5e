package redblacktree

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_AddRebalancesAscendingKeys(t *testing.T) {
	tree := New[int, string]()
	for _, key := range []int{10, 20, 30} {
		require.NoError(t, tree.Add(key, fmt.Sprintf("v%d", key)))
	}

	require.Equal(t, 20, tree.root.key)
	require.Equal(t, ColorBlack, tree.root.Color())
	require.Equal(t, 10, tree.root.left.key)
	require.Equal(t, ColorRed, tree.root.left.Color())
	require.Equal(t, 30, tree.root.right.key)
	require.Equal(t, ColorRed, tree.root.right.Color())
	require.NoError(t, tree.Validate())
}

func TestTree_AscendingInsertStaysBalanced(t *testing.T) {
	tree := New[int, int]()
	for key := 1; key <= 7; key++ {
		require.NoError(t, tree.Add(key, key))
		require.NoError(t, tree.Validate())
	}

	require.LessOrEqual(t, height(tree.root), 3)

	tree = New[int, int]()
	for key := 1; key <= 1024; key++ {
		require.NoError(t, tree.Add(key, key))
	}
	require.NoError(t, tree.Validate())
	require.LessOrEqual(t, height(tree.root), 20)
}

func TestTree_AddAppendsToExistingBucket(t *testing.T) {
	tree := New[int, string]()
	require.NoError(t, tree.Add(5, "a"))
	require.NoError(t, tree.Add(5, "b"))
	require.NoError(t, tree.Add(5, "c"))

	require.Equal(t, 1, tree.Size())
	values, found := tree.Get(5)
	require.True(t, found)
	require.Equal(t, []string{"a", "b", "c"}, values)
	require.Equal(t, []string{"a", "b", "c"}, tree.Values())
	require.NoError(t, tree.Validate())
}

func TestTree_RemoveSplicesSuccessor(t *testing.T) {
	tree := New[int, string]()
	for _, key := range []int{50, 30, 80, 20, 35, 70, 90} {
		require.NoError(t, tree.Add(key, fmt.Sprintf("v%d", key)))
	}

	require.NoError(t, tree.Remove(80))

	require.Equal(t, 6, tree.Size())
	require.False(t, tree.Contains(80))
	require.Equal(t, 50, tree.root.key)
	require.Equal(t, ColorBlack, tree.root.Color())
	require.Equal(t, 90, tree.root.right.key)
	require.Equal(t, ColorBlack, tree.root.right.Color())
	require.Equal(t, 70, tree.root.right.left.key)
	require.Equal(t, ColorRed, tree.root.right.left.Color())
	require.Nil(t, tree.root.right.right)

	values, found := tree.Get(90)
	require.True(t, found)
	require.Equal(t, []string{"v90"}, values)
	require.NoError(t, tree.Validate())
}

func TestTree_RemoveSoleNode(t *testing.T) {
	tree := New[int, string]()
	require.NoError(t, tree.Add(7, "seven"))
	require.NoError(t, tree.Remove(7))

	require.True(t, tree.Empty())
	require.Nil(t, tree.root)
	require.False(t, tree.Contains(7))
	require.Nil(t, tree.Min())
	require.Nil(t, tree.Max())
	require.NoError(t, tree.Validate())
}

func TestTree_RemoveUnknownKeyLeavesTreeUntouched(t *testing.T) {
	tree := New[int, string]()
	for _, key := range []int{50, 30, 80, 20, 35, 70, 90} {
		require.NoError(t, tree.Add(key, fmt.Sprintf("v%d", key)))
	}
	expectedShape := shape(tree)

	err := tree.Remove(42)
	require.ErrorIs(t, err, ErrKeyNotFound)
	require.Equal(t, 7, tree.Size())
	require.Equal(t, expectedShape, shape(tree))
	require.NoError(t, tree.Validate())
}

func TestTree_RemoveValue(t *testing.T) {
	tree := New[int, string]()
	require.NoError(t, tree.Add(5, "a"))
	require.NoError(t, tree.Add(5, "b"))
	require.NoError(t, tree.Add(5, "c"))

	require.NoError(t, tree.RemoveValue(5, "b"))
	values, _ := tree.Get(5)
	require.Equal(t, []string{"a", "c"}, values)

	// a value that is not part of the bucket is ignored
	require.NoError(t, tree.RemoveValue(5, "z"))
	values, _ = tree.Get(5)
	require.Equal(t, []string{"a", "c"}, values)

	require.NoError(t, tree.RemoveValue(5, "a"))
	require.NoError(t, tree.RemoveValue(5, "c"))
	require.False(t, tree.Contains(5))
	require.True(t, tree.Empty())

	require.ErrorIs(t, tree.RemoveValue(5, "a"), ErrKeyNotFound)
}

func TestTree_UpdateKey(t *testing.T) {
	tree := New[int, string]()
	require.NoError(t, tree.Add(1, "a"))
	require.NoError(t, tree.Add(1, "b"))
	require.NoError(t, tree.Add(9, "x"))

	require.NoError(t, tree.UpdateKey(1, "a", 9))
	values, _ := tree.Get(1)
	require.Equal(t, []string{"b"}, values)
	values, _ = tree.Get(9)
	require.Equal(t, []string{"x", "a"}, values)

	require.NoError(t, tree.UpdateKey(1, "b", 2))
	require.False(t, tree.Contains(1))
	values, _ = tree.Get(2)
	require.Equal(t, []string{"b"}, values)

	require.ErrorIs(t, tree.UpdateKey(77, "nope", 78), ErrKeyNotFound)
	require.NoError(t, tree.Validate())
}

func TestTree_UpdateKeyValidatesTargetFirst(t *testing.T) {
	tree := NewWith[int, string](nonNegativeComparator())
	require.NoError(t, tree.Add(3, "v"))

	err := tree.UpdateKey(3, "v", -1)
	require.ErrorIs(t, err, ErrInvalidKey)

	values, found := tree.Get(3)
	require.True(t, found)
	require.Equal(t, []string{"v"}, values)
}

func TestTree_RejectsInvalidKeys(t *testing.T) {
	tree := NewWith[int, string](nonNegativeComparator())

	require.ErrorIs(t, tree.Add(-4, "x"), ErrInvalidKey)
	require.True(t, tree.Empty())
	require.ErrorIs(t, tree.Remove(-4), ErrInvalidKey)
	require.ErrorIs(t, tree.RemoveValue(-4, "x"), ErrInvalidKey)
	require.ErrorIs(t, tree.Remove(4), ErrKeyNotFound)

	require.False(t, ierrors.Is(tree.Add(-4, "x"), ErrKeyNotFound))
}

func TestTree_EqualityTakesPrecedenceOverOrdering(t *testing.T) {
	type accountKey struct {
		id     int
		weight int
	}

	tree := NewWith[accountKey, string](ComparatorFuncs[accountKey]{
		LessFunc:     func(a, b accountKey) bool { return a.weight < b.weight },
		EqualFunc:    func(a, b accountKey) bool { return a.id == b.id },
		ValidateFunc: func(accountKey) bool { return true },
	})
	require.NoError(t, tree.Add(accountKey{id: 2, weight: 50}, "root"))
	require.NoError(t, tree.Add(accountKey{id: 1, weight: 10}, "light"))
	require.NoError(t, tree.Add(accountKey{id: 3, weight: 90}, "heavy"))

	// the weight only steers the descent, the id decides the match
	require.True(t, tree.Contains(accountKey{id: 1, weight: 30}))
	values, found := tree.Get(accountKey{id: 1, weight: 30})
	require.True(t, found)
	require.Equal(t, []string{"light"}, values)

	require.True(t, tree.Contains(accountKey{id: 2, weight: -123}))
}

func TestTree_KeysAndValuesAreOrdered(t *testing.T) {
	tree := New[int, string]()
	require.NoError(t, tree.Add(3, "c1"))
	require.NoError(t, tree.Add(1, "a"))
	require.NoError(t, tree.Add(3, "c2"))
	require.NoError(t, tree.Add(2, "b"))

	require.Equal(t, []int{1, 2, 3}, tree.Keys())
	require.Equal(t, []string{"a", "b", "c1", "c2"}, tree.Values())
}

func TestTree_MinMax(t *testing.T) {
	tree := New[int, int]()
	require.Nil(t, tree.Min())
	require.Nil(t, tree.Max())

	random := rand.New(rand.NewSource(1337))
	for _, key := range random.Perm(100) {
		require.NoError(t, tree.Add(key, key))
	}

	require.Equal(t, 0, tree.Min().Key())
	require.Equal(t, 99, tree.Max().Key())
}

func TestTree_Clear(t *testing.T) {
	tree := New[int, int]()
	for key := 0; key < 10; key++ {
		require.NoError(t, tree.Add(key, key))
	}

	tree.Clear()

	require.True(t, tree.Empty())
	require.Equal(t, 0, tree.Size())
	require.Empty(t, tree.Keys())
	require.NoError(t, tree.Validate())
}

func TestTree_ModelConformance(t *testing.T) {
	random := rand.New(rand.NewSource(0xDEC0DE))
	tree := New[int, int]()
	model := make(map[int][]int)

	for i := 0; i < 5000; i++ {
		key := random.Intn(64)
		switch random.Intn(4) {
		case 0, 1:
			value := random.Intn(1000)
			require.NoError(t, tree.Add(key, value))
			model[key] = append(model[key], value)
		case 2:
			if bucket, exists := model[key]; exists {
				value := bucket[random.Intn(len(bucket))]
				require.NoError(t, tree.RemoveValue(key, value))
				for j, existing := range bucket {
					if existing == value {
						model[key] = append(bucket[:j:j], bucket[j+1:]...)
						break
					}
				}
				if len(model[key]) == 0 {
					delete(model, key)
				}
			} else {
				require.ErrorIs(t, tree.RemoveValue(key, 0), ErrKeyNotFound)
			}
		case 3:
			if _, exists := model[key]; exists {
				require.NoError(t, tree.Remove(key))
				delete(model, key)
			} else {
				require.ErrorIs(t, tree.Remove(key), ErrKeyNotFound)
			}
		}
	}

	require.NoError(t, tree.Validate())
	require.Equal(t, len(model), tree.Size())
	for _, key := range tree.Keys() {
		values, found := tree.Get(key)
		require.True(t, found)
		assert.Equal(t, model[key], values, "bucket of key %d diverged", key)
	}
}

func TestTree_String(t *testing.T) {
	tree := New[int, string]()
	require.NoError(t, tree.Add(1, "one"))
	require.NoError(t, tree.Add(2, "two"))

	assert.Contains(t, tree.String(), "Tree")
	assert.Contains(t, tree.root.String(), "BLACK")
	require.Equal(t, "Node(NIL)", (*Node[int, string])(nil).String())
}

// height measures the longest downward path of the subtree in edges.
func height[K comparable, V comparable](node *Node[K, V]) int {
	if node == nil {
		return -1
	}

	return 1 + max(height(node.left), height(node.right))
}

// shape flattens the tree into an in-order list of key, color and depth triples for structural comparisons.
func shape[K comparable, V comparable](tree *Tree[K, V]) (result []string) {
	var walk func(node *Node[K, V], depth int)
	walk = func(node *Node[K, V], depth int) {
		if node == nil {
			return
		}
		walk(node.left, depth+1)
		result = append(result, fmt.Sprintf("%v/%s/%d", node.key, node.color, depth))
		walk(node.right, depth+1)
	}
	walk(tree.root, 0)

	return result
}

func nonNegativeComparator() ComparatorFuncs[int] {
	return ComparatorFuncs[int]{
		LessFunc:     func(a, b int) bool { return a < b },
		EqualFunc:    func(a, b int) bool { return a == b },
		ValidateFunc: func(key int) bool { return key >= 0 },
	}
}
