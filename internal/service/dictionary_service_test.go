package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/contract-dictionary/internal/codes"
	"github.com/ignatzorin/contract-dictionary/internal/pkg/apperror"
)

func newTestService() *DictionaryService {
	return NewDictionaryService(codes.DefaultRegistry(), codes.StatusClassPrefix)
}

func TestDictionaryService_ListCategories(t *testing.T) {
	svc := newTestService()

	categories := svc.ListCategories()
	assert.Len(t, categories, 4)
	assert.Equal(t, codes.CategoryContractStatus, categories[0].Name())
}

func TestDictionaryService_GetCategory(t *testing.T) {
	svc := newTestService()

	c, err := svc.GetCategory(codes.CategoryContractType)
	assert.NoError(t, err)
	assert.Len(t, c.Entries(), 4)

	_, err = svc.GetCategory("NO_SUCH_CATEGORY")
	assert.True(t, apperror.IsNotFound(err))
}

func TestDictionaryService_Resolve(t *testing.T) {
	svc := newTestService()

	res, err := svc.Resolve(codes.CategoryContractStatus, "3")
	assert.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "PASSED", res.Key)
	assert.Equal(t, "审核通过", res.Label)
	assert.Equal(t, "contract-status-icon PASSED", res.Class)
}

func TestDictionaryService_Resolve_NumericCode(t *testing.T) {
	svc := newTestService()

	res, err := svc.Resolve(codes.CategoryContractCreateMode, 0)
	assert.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "contract-status-icon FROM_UPLOAD", res.Class)
	assert.Equal(t, "上传创建", res.Label)
}

func TestDictionaryService_Resolve_UnknownCode(t *testing.T) {
	svc := newTestService()

	// промах — не ошибка
	res, err := svc.Resolve(codes.CategoryContractStatus, "9")
	assert.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, "", res.Label)
	assert.Equal(t, "", res.Class)
}

func TestDictionaryService_Resolve_UnknownCategory(t *testing.T) {
	svc := newTestService()

	_, err := svc.Resolve("NO_SUCH_CATEGORY", "3")
	assert.True(t, apperror.IsNotFound(err))
}
