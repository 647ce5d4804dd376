package codes

// Имена категорий контрактного справочника.
const (
	CategoryContractStatus     = "CONTRACT_STATUS"
	CategoryContractType       = "CONTRACT_TYPE"
	CategoryContractCreateMode = "CONTRACT_CREATE_MODE"
	CategoryAuditResult        = "AUDIT_RESULT"
)

// StatusClassPrefix — префикс CSS-класса иконки статуса, который строит ClassName.
const StatusClassPrefix = "contract-status-icon "

// DefaultRegistry собирает справочник кодов контрактной системы.
// Коды совпадают со значениями, которые отдаёт бэкенд договоров.
func DefaultRegistry() *Registry {
	return MustRegistry(
		NewCategory(CategoryContractStatus,
			Entry{Key: "TO_SUBMIT", Code: "1", Label: "待提交"},
			Entry{Key: "AUDITING", Code: "2", Label: "审核中"},
			Entry{Key: "PASSED", Code: "3", Label: "审核通过"},
			Entry{Key: "REJECTED", Code: "4", Label: "审核不通过"},
			Entry{Key: "RUNNING", Code: "5", Label: "履行中"},
			Entry{Key: "FINISHED", Code: "6", Label: "已完成"},
			Entry{Key: "TERMINATED", Code: "7", Label: "已终止"},
		),
		NewCategory(CategoryContractType,
			Entry{Key: "PURCHASE", Code: "1", Label: "采购合同"},
			Entry{Key: "SALES", Code: "2", Label: "销售合同"},
			Entry{Key: "FRAMEWORK", Code: "3", Label: "框架协议"},
			Entry{Key: "SUPPLEMENT", Code: "4", Label: "补充协议"},
		),
		NewCategory(CategoryContractCreateMode,
			Entry{Key: "FROM_UPLOAD", Code: "0", Label: "上传创建"},
			Entry{Key: "FROM_TEMPLATE", Code: "1", Label: "模板创建"},
			Entry{Key: "ONLINE", Code: "2", Label: "在线起草"},
		),
		NewCategory(CategoryAuditResult,
			Entry{Key: "AGREE", Code: "agree", Label: "同意"},
			Entry{Key: "REFUSE", Code: "refuse", Label: "拒绝"},
		),
	)
}
