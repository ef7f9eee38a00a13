package resolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndagen/internal/config"
	"ndagen/internal/domain"
	"ndagen/internal/port"
	"ndagen/internal/resolver"
	"ndagen/internal/resolver/directory"
)

func fixed(addr string, ok bool, calls *int) port.AddressResolver {
	return port.AddressResolverFunc(func(_ context.Context, _ string) (string, bool) {
		*calls++
		return addr, ok
	})
}

func TestChain_FirstHitWins(t *testing.T) {
	var first, second int
	chain := resolver.NewChain([]port.AddressResolver{
		fixed("  上海市浦东新区 ", true, &first),
		fixed("unused", true, &second),
	}, []string{"a", "b"}, nil)

	addr, ok := chain.Resolve(context.Background(), "公司")

	assert.True(t, ok)
	assert.Equal(t, "上海市浦东新区", addr)
	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
}

func TestChain_SkipsMissesAndBlankHits(t *testing.T) {
	var a, b, c int
	chain := resolver.NewChain([]port.AddressResolver{
		fixed("", false, &a),
		fixed("   ", true, &b),
		fixed("北京市海淀区", true, &c),
	}, nil, nil)

	addr, ok := chain.Resolve(context.Background(), "公司")

	assert.True(t, ok)
	assert.Equal(t, "北京市海淀区", addr)
	assert.Equal(t, []int{1, 1, 1}, []int{a, b, c})
}

func TestChain_AllMiss(t *testing.T) {
	var a int
	chain := resolver.NewChain([]port.AddressResolver{fixed("", false, &a)}, []string{"a"}, nil)

	addr, ok := chain.Resolve(context.Background(), "公司")

	assert.False(t, ok)
	assert.Empty(t, addr)
}

func TestChain_EmptyNameAndEmptyChain(t *testing.T) {
	var a int
	chain := resolver.NewChain([]port.AddressResolver{fixed("x", true, &a)}, nil, nil)

	_, ok := chain.Resolve(context.Background(), "  ")
	assert.False(t, ok)
	assert.Equal(t, 0, a)

	_, ok = resolver.NewChain(nil, nil, nil).Resolve(context.Background(), "公司")
	assert.False(t, ok)
}

func TestChain_CancelledContext(t *testing.T) {
	var a int
	chain := resolver.NewChain([]port.AddressResolver{fixed("x", true, &a)}, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := chain.Resolve(ctx, "公司")

	assert.False(t, ok)
	assert.Equal(t, 0, a)
}

func TestBuild_DemoDirectoryWithoutKey(t *testing.T) {
	cfg := &config.Config{Directory: config.DirectoryConfig{Demo: true}}

	chain, dir, err := resolver.Build(cfg, nil)

	require.NoError(t, err)
	require.NotNil(t, dir)
	assert.Equal(t, []string{"directory"}, chain.Names())

	addr, ok := chain.Resolve(context.Background(), "北京智云科技有限公司")
	assert.True(t, ok)
	assert.Equal(t, "北京市海淀区中关村大街1号鼎好大厦A座12层", addr)
}

func TestBuild_WorkbookThenAmap(t *testing.T) {
	path := t.TempDir() + "/companies.xlsx"
	require.NoError(t, directory.Save(path, []domain.CompanyEntry{{Name: "甲公司", Address: "甲地址"}}))
	cfg := &config.Config{
		Directory: config.DirectoryConfig{Path: path, Demo: true},
		Amap:      config.AmapConfig{APIKey: "k", BaseURL: "http://127.0.0.1:1"},
	}

	chain, dir, err := resolver.Build(cfg, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, dir.Len())
	assert.Equal(t, []string{"directory", "amap"}, chain.Names())
}

func TestBuild_NothingConfigured(t *testing.T) {
	chain, dir, err := resolver.Build(&config.Config{}, nil)

	require.NoError(t, err)
	assert.Nil(t, dir)
	assert.Empty(t, chain.Names())
}

func TestBuild_MissingWorkbook(t *testing.T) {
	cfg := &config.Config{Directory: config.DirectoryConfig{Path: t.TempDir() + "/missing.xlsx"}}

	_, _, err := resolver.Build(cfg, nil)

	assert.Error(t, err)
}
