package i18n

var messages = map[string]map[string]string{
	"en": {
		"server_error": "Something went wrong, please try again later",

		"auth.registered":          "Registration successful, an OTP has been sent to your email",
		"auth.verified":            "Email verified successfully",
		"auth.logged_in":           "Logged in successfully",
		"auth.profile":             "Profile fetched successfully",
		"auth.otp_sent":            "An OTP has been sent to your email",
		"auth.password_reset":      "Password has been reset successfully",
		"auth.email_exists":        "This email is already registered",
		"auth.user_not_found":      "User not found",
		"auth.already_verified":    "Email is already verified",
		"auth.otp_invalid":         "The OTP is invalid or has expired",
		"auth.invalid_credentials": "Invalid email or password",
		"auth.not_verified":        "Please verify your email before logging in",
		"auth.invalid_request":     "Invalid request",
		"auth.invalid_token":       "Invalid or missing token",
		"auth.forbidden_admin":     "Admin access required",
		"auth.unauthorized":        "You are not allowed to perform this action",

		"product.created":        "Product created successfully",
		"product.updated":        "Product updated successfully",
		"product.deleted":        "Product deleted successfully",
		"product.list":           "Products fetched successfully",
		"product.detail":         "Product fetched successfully",
		"product.missing_fields": "Name, price, stock and SKU are required",
		"product.sku_exists":     "A product with this SKU already exists",
		"product.invalid_id":     "Invalid product id",
		"product.not_found":      "Product not found",

		"order.created":            "Order placed successfully",
		"order.list":               "Orders fetched successfully",
		"order.deleted":            "Order deleted successfully",
		"order.invalid_items":      "Order items are missing or invalid",
		"order.product_not_found":  "Product {id} not found",
		"order.insufficient_stock": "Insufficient stock for {product}",
		"order.not_found":          "Order not found",

		"mail.otp_subject":   "Your OTP Code",
		"mail.otp_text":      "Your OTP code is: {otp}",
		"mail.otp_html":      "<p>Your OTP code is: <strong>{otp}</strong></p>",
		"mail.reset_subject": "Password Reset OTP",
	},
	"ar": {
		"server_error": "حدث خطأ ما، يرجى المحاولة لاحقاً",

		"auth.registered":          "تم التسجيل بنجاح، تم إرسال رمز التحقق إلى بريدك الإلكتروني",
		"auth.verified":            "تم التحقق من البريد الإلكتروني بنجاح",
		"auth.logged_in":           "تم تسجيل الدخول بنجاح",
		"auth.profile":             "تم جلب الملف الشخصي بنجاح",
		"auth.otp_sent":            "تم إرسال رمز التحقق إلى بريدك الإلكتروني",
		"auth.password_reset":      "تمت إعادة تعيين كلمة المرور بنجاح",
		"auth.email_exists":        "هذا البريد الإلكتروني مسجل بالفعل",
		"auth.user_not_found":      "المستخدم غير موجود",
		"auth.already_verified":    "تم التحقق من البريد الإلكتروني مسبقاً",
		"auth.otp_invalid":         "رمز التحقق غير صالح أو منتهي الصلاحية",
		"auth.invalid_credentials": "البريد الإلكتروني أو كلمة المرور غير صحيحة",
		"auth.not_verified":        "يرجى التحقق من بريدك الإلكتروني قبل تسجيل الدخول",
		"auth.invalid_request":     "طلب غير صالح",
		"auth.invalid_token":       "رمز الدخول غير صالح أو مفقود",
		"auth.forbidden_admin":     "هذه العملية تتطلب صلاحيات المسؤول",
		"auth.unauthorized":        "غير مسموح لك بتنفيذ هذه العملية",

		"product.created":        "تم إنشاء المنتج بنجاح",
		"product.updated":        "تم تحديث المنتج بنجاح",
		"product.deleted":        "تم حذف المنتج بنجاح",
		"product.list":           "تم جلب المنتجات بنجاح",
		"product.detail":         "تم جلب المنتج بنجاح",
		"product.missing_fields": "الاسم والسعر والمخزون ورمز المنتج حقول مطلوبة",
		"product.sku_exists":     "يوجد منتج بنفس رمز المنتج",
		"product.invalid_id":     "معرّف المنتج غير صالح",
		"product.not_found":      "المنتج غير موجود",

		"order.created":            "تم إنشاء الطلب بنجاح",
		"order.list":               "تم جلب الطلبات بنجاح",
		"order.deleted":            "تم حذف الطلب بنجاح",
		"order.invalid_items":      "عناصر الطلب مفقودة أو غير صالحة",
		"order.product_not_found":  "المنتج {id} غير موجود",
		"order.insufficient_stock": "المخزون غير كافٍ للمنتج {product}",
		"order.not_found":          "الطلب غير موجود",

		"mail.otp_subject":   "رمز التحقق الخاص بك",
		"mail.otp_text":      "رمز التحقق الخاص بك هو: {otp}",
		"mail.otp_html":      "<p>رمز التحقق الخاص بك هو: <strong>{otp}</strong></p>",
		"mail.reset_subject": "رمز إعادة تعيين كلمة المرور",
	},
}
