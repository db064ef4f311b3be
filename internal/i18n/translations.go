package i18n

// tables maps each locale to its key/value translations. Every locale
// carries the same key set; TestTablesShareKeys enforces that.
var tables = map[Locale]map[string]string{
	English: {
		"dashboard":          "Dashboard",
		"pos":                "POS",
		"orders":             "Orders",
		"products":           "Products",
		"customers":          "Customers",
		"reports":            "Reports",
		"settings":           "Settings",
		"notifications":      "Notifications",
		"profile":            "Profile",
		"logout":             "Logout",
		"addProduct":         "Add Product",
		"editProduct":        "Edit Product",
		"deleteProduct":      "Delete Product",
		"addCustomer":        "Add Customer",
		"editCustomer":       "Edit Customer",
		"addOrder":           "Add Order",
		"viewOrder":          "View Order",
		"name":               "Name",
		"email":              "Email",
		"phone":              "Phone",
		"address":            "Address",
		"price":              "Price",
		"quantity":           "Quantity",
		"stock":              "Stock",
		"category":           "Category",
		"search":             "Search",
		"filter":             "Filter",
		"sort":               "Sort",
		"export":             "Export",
		"import":             "Import",
		"delete":             "Delete",
		"edit":               "Edit",
		"save":               "Save",
		"cancel":             "Cancel",
		"confirm":            "Confirm",
		"view":               "View",
		"list":               "List View",
		"cardView":           "Card View",
		"kanban":             "Kanban View",
		"newProduct":         "New Product",
		"newCustomer":        "New Customer",
		"newOrder":           "New Order",
		"total":              "Total",
		"subtotal":           "Subtotal",
		"tax":                "Tax",
		"discount":           "Discount",
		"payment":            "Payment",
		"paymentMethod":      "Payment Method",
		"cash":               "Cash",
		"card":               "Card",
		"mobile":             "Mobile Money",
		"change":             "Change",
		"paymentSuccess":     "Payment Successful",
		"noData":             "No data available",
		"loading":            "Loading...",
		"error":              "Error",
		"success":            "Success",
		"warning":            "Warning",
		"login":              "Login",
		"password":           "Password",
		"loginTitle":         "Sign in to POS",
		"invalidCredentials": "Invalid email or password",
		"language":           "Language",
		"currency":           "Currency",
		"taxRate":            "Tax Rate (%)",
		"users":              "Users",
		"addUser":            "Add User",
		"role":               "Role",
		"admin":              "Admin",
		"manager":            "Manager",
		"cashier":            "Cashier",
		"status":             "Status",
		"date":               "Date",
		"customer":           "Customer",
		"orderID":            "Order ID",
		"actions":            "Actions",
		"back":               "Back",
		"all":                "All",
		"Completed":          "Completed",
		"Pending":            "Pending",
		"Failed":             "Failed",
		"inStock":            "In Stock",
		"lowStock":           "Low Stock",
		"outOfStock":         "Out of Stock",
		"vip":                "VIP",
		"regular":            "Regular",
		"new":                "New",
		"cart":               "Cart",
		"emptyCart":          "Cart is empty",
		"amountGiven":        "Amount Given",
		"insufficientAmount": "Amount is less than total",
		"revenue":            "Revenue",
		"averageOrder":       "Average Order",
		"medianOrder":        "Median Order",
		"salesTrend":         "Sales Trend",
		"topProducts":        "Top Products",
		"recentOrders":       "Recent Orders",
		"stockUnits":         "Units in Stock",
		"items":              "Items",
		"description":        "Description",
		"image":              "Image",
		"upload":             "Upload",
		"totalPurchases":     "Purchases",
		"totalSpent":         "Total Spent",
		"changePassword":     "Change Password",
		"currentPassword":    "Current Password",
		"newPassword":        "New Password",
		"saved":              "Saved",
		"deleted":            "Deleted",
		"forbidden":          "You do not have permission for this action",
		"requiredFields":     "Please fill in all required fields",
		"invalidInput":       "Invalid input",
		"notFound":           "Not found",
		"backendUnavailable": "The backend is unavailable",
		"passwordTooShort":   "Password must be at least 8 characters",
		"wrongPassword":      "Current password is incorrect",
		"emailTaken":         "Email is already in use",
		"lastAdmin":          "Cannot remove the last admin",
		"deleteSelf":         "You cannot delete your own account",
	},
	Amharic: {
		"dashboard":          "ዳሽቦርድ",
		"pos":                "POS",
		"orders":             "ትዕዛዞች",
		"products":           "ምርቶች",
		"customers":          "ደንበኞች",
		"reports":            "ሪፖርቶች",
		"settings":           "ቅንብሮች",
		"notifications":      "ማሳወቂያዎች",
		"profile":            "መገለጫ",
		"logout":             "ውጣ",
		"addProduct":         "ምርት ያክሉ",
		"editProduct":        "ምርት ያርትዑ",
		"deleteProduct":      "ምርት ይሰርዙ",
		"addCustomer":        "ደንበኛ ያክሉ",
		"editCustomer":       "ደንበኛ ያርትዑ",
		"addOrder":           "ትዕዛዝ ያክሉ",
		"viewOrder":          "ትዕዛዝ ይመልከቱ",
		"name":               "ስም",
		"email":              "ኢሜል",
		"phone":              "ስልክ",
		"address":            "አድራሻ",
		"price":              "ዋጋ",
		"quantity":           "ብዛት",
		"stock":              "ክምችት",
		"category":           "ምድብ",
		"search":             "ፈልግ",
		"filter":             "ማጣሪያ",
		"sort":               "መደርደር",
		"export":             "ላክ",
		"import":             "አስገባ",
		"delete":             "ሰርዝ",
		"edit":               "ያርትዑ",
		"save":               "ያስቀምጡ",
		"cancel":             "ይቅር",
		"confirm":            "አረጋግጡ",
		"view":               "ይመልከቱ",
		"list":               "ዝርዝር ውሂብ",
		"cardView":           "ካርድ ወ",
		"kanban":             "ካንባን ወ",
		"newProduct":         "አዲስ ምርት",
		"newCustomer":        "አዲስ ደንበኛ",
		"newOrder":           "አዲስ ትዕዛዝ",
		"total":              "ጠቅላላ",
		"subtotal":           "ንዑስ ጠቅላላ",
		"tax":                "ታክስ",
		"discount":           "ቅናሽ",
		"payment":            "ክፍያ",
		"paymentMethod":      "የክፍያ ዘዴ",
		"cash":               "ገንዘብ",
		"card":               "ካርድ",
		"mobile":             "ሞባይል ገንዘብ",
		"change":             "ለውጥ",
		"paymentSuccess":     "ክፍያ ተሳክቷል",
		"noData":             "ምንም ውሂብ የለም",
		"loading":            "ይጠበቃል...",
		"error":              "ስህተት",
		"success":            "ተሳክተው",
		"warning":            "ማስጠንቀቂያ",
		"login":              "ግባ",
		"password":           "የይለፍ ቃል",
		"loginTitle":         "ወደ POS ይግቡ",
		"invalidCredentials": "ልክ ያልሆነ ኢሜል ወይም የይለፍ ቃል",
		"language":           "ቋንቋ",
		"currency":           "ምንዛሬ",
		"taxRate":            "የታክስ መጠን (%)",
		"users":              "ተጠቃሚዎች",
		"addUser":            "ተጠቃሚ ያክሉ",
		"role":               "ሚና",
		"admin":              "አስተዳዳሪ",
		"manager":            "ሥራ አስኪያጅ",
		"cashier":            "ገንዘብ ተቀባይ",
		"status":             "ሁኔታ",
		"date":               "ቀን",
		"customer":           "ደንበኛ",
		"orderID":            "የትዕዛዝ መለያ",
		"actions":            "ተግባራት",
		"back":               "ተመለስ",
		"all":                "ሁሉም",
		"Completed":          "ተጠናቋል",
		"Pending":            "በመጠባበቅ ላይ",
		"Failed":             "አልተሳካም",
		"inStock":            "በክምችት ያለ",
		"lowStock":           "ዝቅተኛ ክምችት",
		"outOfStock":         "ክምችት የለም",
		"vip":                "ቪአይፒ",
		"regular":            "መደበኛ",
		"new":                "አዲስ",
		"cart":               "ጋሪ",
		"emptyCart":          "ጋሪው ባዶ ነው",
		"amountGiven":        "የተሰጠ መጠን",
		"insufficientAmount": "መጠኑ ከጠቅላላው ያነሰ ነው",
		"revenue":            "ገቢ",
		"averageOrder":       "አማካይ ትዕዛዝ",
		"medianOrder":        "መካከለኛ ትዕዛዝ",
		"salesTrend":         "የሽያጭ አዝማሚያ",
		"topProducts":        "ምርጥ ምርቶች",
		"recentOrders":       "የቅርብ ጊዜ ትዕዛዞች",
		"stockUnits":         "በክምችት ያሉ አሃዶች",
		"items":              "እቃዎች",
		"description":        "መግለጫ",
		"image":              "ምስል",
		"upload":             "ስቀል",
		"totalPurchases":     "ግዢዎች",
		"totalSpent":         "ጠቅላላ ወጪ",
		"changePassword":     "የይለፍ ቃል ቀይር",
		"currentPassword":    "የአሁኑ የይለፍ ቃል",
		"newPassword":        "አዲስ የይለፍ ቃል",
		"saved":              "ተቀምጧል",
		"deleted":            "ተሰርዟል",
		"forbidden":          "ለዚህ ተግባር ፈቃድ የለዎትም",
		"requiredFields":     "እባክዎ ሁሉንም አስፈላጊ መስኮች ይሙሉ",
		"invalidInput":       "ልክ ያልሆነ ግብዓት",
		"notFound":           "አልተገኘም",
		"backendUnavailable": "የጀርባ አገልግሎቱ አይገኝም",
		"passwordTooShort":   "የይለፍ ቃል ቢያንስ 8 ቁምፊዎች መሆን አለበት",
		"wrongPassword":      "የአሁኑ የይለፍ ቃል ትክክል አይደለም",
		"emailTaken":         "ኢሜሉ አስቀድሞ ጥቅም ላይ ውሏል",
		"lastAdmin":          "የመጨረሻውን አስተዳዳሪ ማስወገድ አይቻልም",
		"deleteSelf":         "የራስዎን መለያ መሰረዝ አይችሉም",
	},
	Arabic: {
		"dashboard":          "لوحة المعلومات",
		"pos":                "POS",
		"orders":             "الطلبات",
		"products":           "المنتجات",
		"customers":          "العملاء",
		"reports":            "التقارير",
		"settings":           "الإعدادات",
		"notifications":      "إخطارات",
		"profile":            "الملف الشخصي",
		"logout":             "تسجيل الخروج",
		"addProduct":         "إضافة منتج",
		"editProduct":        "تعديل منتج",
		"deleteProduct":      "حذف منتج",
		"addCustomer":        "إضافة عميل",
		"editCustomer":       "تعديل العميل",
		"addOrder":           "إضافة طلب",
		"viewOrder":          "عرض الطلب",
		"name":               "الاسم",
		"email":              "البريد الإلكتروني",
		"phone":              "هاتف",
		"address":            "عنوان",
		"price":              "السعر",
		"quantity":           "الكمية",
		"stock":              "المخزون",
		"category":           "الفئة",
		"search":             "بحث",
		"filter":             "تصفية",
		"sort":               "ترتيب",
		"export":             "تصدير",
		"import":             "استيراد",
		"delete":             "حذف",
		"edit":               "تعديل",
		"save":               "حفظ",
		"cancel":             "إلغاء",
		"confirm":            "تأكيد",
		"view":               "عرض",
		"list":               "عرض القائمة",
		"cardView":           "عرض البطاقة",
		"kanban":             "عرض كانبان",
		"newProduct":         "منتج جديد",
		"newCustomer":        "عميل جديد",
		"newOrder":           "طلب جديد",
		"total":              "الإجمالي",
		"subtotal":           "المجموع الفرعي",
		"tax":                "ضريبة",
		"discount":           "خصم",
		"payment":            "دفع",
		"paymentMethod":      "طريقة الدفع",
		"cash":               "نقد",
		"card":               "بطاقة",
		"mobile":             "محفظة رقمية",
		"change":             "تغيير",
		"paymentSuccess":     "تم الدفع بنجاح",
		"noData":             "لا توجد بيانات",
		"loading":            "جاري التحميل...",
		"error":              "خطأ",
		"success":            "نجح",
		"warning":            "تحذير",
		"login":              "تسجيل الدخول",
		"password":           "كلمة المرور",
		"loginTitle":         "تسجيل الدخول إلى نقطة البيع",
		"invalidCredentials": "البريد الإلكتروني أو كلمة المرور غير صحيحة",
		"language":           "اللغة",
		"currency":           "العملة",
		"taxRate":            "نسبة الضريبة (%)",
		"users":              "المستخدمون",
		"addUser":            "إضافة مستخدم",
		"role":               "الدور",
		"admin":              "مسؤول",
		"manager":            "مدير",
		"cashier":            "أمين الصندوق",
		"status":             "الحالة",
		"date":               "التاريخ",
		"customer":           "العميل",
		"orderID":            "رقم الطلب",
		"actions":            "الإجراءات",
		"back":               "رجوع",
		"all":                "الكل",
		"Completed":          "مكتمل",
		"Pending":            "قيد الانتظار",
		"Failed":             "فشل",
		"inStock":            "متوفر",
		"lowStock":           "مخزون منخفض",
		"outOfStock":         "نفد من المخزون",
		"vip":                "كبار العملاء",
		"regular":            "منتظم",
		"new":                "جديد",
		"cart":               "السلة",
		"emptyCart":          "السلة فارغة",
		"amountGiven":        "المبلغ المدفوع",
		"insufficientAmount": "المبلغ أقل من الإجمالي",
		"revenue":            "الإيرادات",
		"averageOrder":       "متوسط الطلب",
		"medianOrder":        "الطلب الوسيط",
		"salesTrend":         "اتجاه المبيعات",
		"topProducts":        "أفضل المنتجات",
		"recentOrders":       "الطلبات الأخيرة",
		"stockUnits":         "الوحدات في المخزون",
		"items":              "العناصر",
		"description":        "الوصف",
		"image":              "صورة",
		"upload":             "رفع",
		"totalPurchases":     "المشتريات",
		"totalSpent":         "إجمالي الإنفاق",
		"changePassword":     "تغيير كلمة المرور",
		"currentPassword":    "كلمة المرور الحالية",
		"newPassword":        "كلمة المرور الجديدة",
		"saved":              "تم الحفظ",
		"deleted":            "تم الحذف",
		"forbidden":          "ليس لديك إذن لهذا الإجراء",
		"requiredFields":     "يرجى ملء جميع الحقول المطلوبة",
		"invalidInput":       "إدخال غير صالح",
		"notFound":           "غير موجود",
		"backendUnavailable": "الخادم غير متاح",
		"passwordTooShort":   "يجب أن تتكون كلمة المرور من 8 أحرف على الأقل",
		"wrongPassword":      "كلمة المرور الحالية غير صحيحة",
		"emailTaken":         "البريد الإلكتروني مستخدم بالفعل",
		"lastAdmin":          "لا يمكن إزالة آخر مسؤول",
		"deleteSelf":         "لا يمكنك حذف حسابك",
	},
}
