// internal/pkg/i18n/messages.go
package i18n

// messages holds the embedded translation bundles keyed by language
var messages = map[string]map[string]string{
	LanguageEnglish: {
		"orders.title":                 "Orders",
		"orders.notFound":              "Order not found",
		"orders.deleted":               "Order deleted successfully",
		"orders.updated":               "Order updated successfully",
		"orders.errors.nameRequired":   "Name is required",
		"orders.errors.dateRequired":   "Date is required",
		"orders.errors.totalRequired":  "Total must be greater than 0",
		"orders.errors.statusRequired": "Status is required",
		"products.title":               "Products",
		"products.notFound":            "Product not found",
		"products.created":             "Product created successfully",
		"products.updated":             "Product updated successfully",
		"products.deleted":             "Product deleted successfully",
		"validation.nameRequired":      "Product name is required",
		"validation.priceRequired":     "Valid price is required",
		"validation.categoryRequired":  "Category is required",
		"validation.colorRequired":     "Color is required",
		"cart.title":                   "Shopping Cart",
		"cart.empty":                   "Your cart is empty",
		"cart.checkout":                "Checkout",
		"cart.added":                   "Item added to cart",
		"cart.removed":                 "Item removed from cart",
		"cart.cleared":                 "Cart cleared",
		"checkout.placed":              "Order placed successfully",
		"checkout.emptyCart":           "Cart is empty",
	},
	LanguageArabic: {
		"orders.title":                 "الطلبات",
		"orders.notFound":              "الطلب غير موجود",
		"orders.deleted":               "تم حذف الطلب بنجاح",
		"orders.updated":               "تم تحديث الطلب بنجاح",
		"orders.errors.nameRequired":   "الاسم مطلوب",
		"orders.errors.dateRequired":   "التاريخ مطلوب",
		"orders.errors.totalRequired":  "يجب أن يكون الإجمالي أكبر من 0",
		"orders.errors.statusRequired": "الحالة مطلوبة",
		"products.title":               "المنتجات",
		"products.notFound":            "المنتج غير موجود",
		"products.created":             "تم إنشاء المنتج بنجاح",
		"products.updated":             "تم تحديث المنتج بنجاح",
		"products.deleted":             "تم حذف المنتج بنجاح",
		"validation.nameRequired":      "اسم المنتج مطلوب",
		"validation.priceRequired":     "السعر الصحيح مطلوب",
		"validation.categoryRequired":  "الفئة مطلوبة",
		"validation.colorRequired":     "اللون مطلوب",
		"cart.title":                   "عربة التسوق",
		"cart.empty":                   "عربة التسوق فارغة",
		"cart.checkout":                "الدفع",
		"cart.added":                   "تمت إضافة المنتج إلى العربة",
		"cart.removed":                 "تمت إزالة المنتج من العربة",
		"cart.cleared":                 "تم تفريغ العربة",
		"checkout.placed":              "تم تقديم الطلب بنجاح",
		"checkout.emptyCart":           "عربة التسوق فارغة",
	},
}
