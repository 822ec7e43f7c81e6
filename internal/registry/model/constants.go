package model

// MessageKey is the stable machine-readable key clients branch on.
type MessageKey string

// Keys shared by all entities.
const (
	KeyIdentifierMissing        MessageKey = "IDENTIFIER_MISSING"
	KeyIdentifierNotUUID        MessageKey = "IDENTIFIER_NOT_UUID"
	KeyMissingDataInput         MessageKey = "MISSING_DATA_INPUT"
	KeyMandatoryFieldsMissing   MessageKey = "MANDATORY_FIELDS_MISSING"
	KeyInvalidLocationStructure MessageKey = "INVALID_LOCATION_STRUCTURE"
	KeyExceededPageLimit        MessageKey = "EXCEEDED_PAGE_LIMIT"
	KeyInternalServerError      MessageKey = "INTERNAL_SERVER_ERROR"
)

// Per-entity keys.
const (
	KeySystemNotFoundID   MessageKey = "SYSTEM_NOT_FOUND_ID"
	KeySystemNotFoundName MessageKey = "SYSTEM_NOT_FOUND_NAME"
	KeyDuplicateSystem    MessageKey = "DUPLICATE_SYSTEM"
	KeyNoSystemsFound     MessageKey = "NO_SYSTEMS_FOUND"

	KeyVendorNotFoundID   MessageKey = "VENDOR_NOT_FOUND_ID"
	KeyVendorNotFoundName MessageKey = "VENDOR_NOT_FOUND_NAME"
	KeyDuplicateVendor    MessageKey = "DUPLICATE_VENDOR"
	KeyNoVendorsFound     MessageKey = "NO_VENDORS_FOUND"

	KeyAssetCategoryNotFoundID   MessageKey = "ASSET_CATEGORY_NOT_FOUND_ID"
	KeyAssetCategoryNotFoundName MessageKey = "ASSET_CATEGORY_NOT_FOUND_NAME"
	KeyDuplicateAssetCategory    MessageKey = "DUPLICATE_ASSET_CATEGORY"
	KeyNoAssetCategoriesFound    MessageKey = "NO_ASSET_CATEGORIES_FOUND"
)

// MsgTransactionConcluded is the message carried by every successful result.
const MsgTransactionConcluded = "Database transaction successfully concluded."

// EntityKeys bundles the per-entity message keys and display names the
// generic pipeline needs. One value exists per entity type.
type EntityKeys struct {
	Singular       string
	Plural         string
	NotFoundByID   MessageKey
	NotFoundByName MessageKey
	Duplicate      MessageKey
	NoneFound      MessageKey
}

var (
	SystemKeys = EntityKeys{
		Singular:       "System",
		Plural:         "Systems",
		NotFoundByID:   KeySystemNotFoundID,
		NotFoundByName: KeySystemNotFoundName,
		Duplicate:      KeyDuplicateSystem,
		NoneFound:      KeyNoSystemsFound,
	}

	VendorKeys = EntityKeys{
		Singular:       "Vendor",
		Plural:         "Vendors",
		NotFoundByID:   KeyVendorNotFoundID,
		NotFoundByName: KeyVendorNotFoundName,
		Duplicate:      KeyDuplicateVendor,
		NoneFound:      KeyNoVendorsFound,
	}

	AssetCategoryKeys = EntityKeys{
		Singular:       "Asset category",
		Plural:         "Asset categories",
		NotFoundByID:   KeyAssetCategoryNotFoundID,
		NotFoundByName: KeyAssetCategoryNotFoundName,
		Duplicate:      KeyDuplicateAssetCategory,
		NoneFound:      KeyNoAssetCategoriesFound,
	}
)

// Pagination defaults applied when the query omits page or size.
const (
	DefaultPage = 0
	DefaultSize = 10
	MaxSize     = 100
)
