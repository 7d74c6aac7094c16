package erp

var defaultCustomers = []Customer{
	{ID: "CUS-001", Name: "Jane Cooper", Email: "jane.cooper@example.com", Phone: "+1 (555) 201-3311", Status: CustomerActive, TotalOrders: 24, TotalSpent: 12480, JoinDate: "2023-01-14"},
	{ID: "CUS-002", Name: "Wade Warren", Email: "wade.warren@example.com", Phone: "+1 (555) 201-7742", Status: CustomerActive, TotalOrders: 18, TotalSpent: 8935.5, JoinDate: "2023-02-03"},
	{ID: "CUS-003", Name: "Esther Howard", Email: "esther.howard@example.com", Phone: "+1 (555) 201-0098", Status: CustomerPending, TotalOrders: 2, TotalSpent: 310, JoinDate: "2024-05-21"},
	{ID: "CUS-004", Name: "Cameron Williamson", Email: "cameron.w@example.com", Phone: "+1 (555) 201-4410", Status: CustomerInactive, TotalOrders: 7, TotalSpent: 1920.75, JoinDate: "2022-11-30"},
	{ID: "CUS-005", Name: "Brooklyn Simmons", Email: "brooklyn.s@example.com", Phone: "+1 (555) 201-5521", Status: CustomerActive, TotalOrders: 31, TotalSpent: 16240, JoinDate: "2022-08-09"},
	{ID: "CUS-006", Name: "Leslie Alexander", Email: "leslie.alexander@example.com", Phone: "+1 (555) 201-6630", Status: CustomerPending, TotalOrders: 1, TotalSpent: 129, JoinDate: "2024-06-02"},
	{ID: "CUS-007", Name: "Jenny Wilson", Email: "jenny.wilson@example.com", Phone: "+1 (555) 201-8854", Status: CustomerActive, TotalOrders: 12, TotalSpent: 5420.2, JoinDate: "2023-07-18"},
	{ID: "CUS-008", Name: "Guy Hawkins", Email: "guy.hawkins@example.com", Phone: "+1 (555) 201-9012", Status: CustomerActive, TotalOrders: 9, TotalSpent: 3310, JoinDate: "2023-10-25"},
	{ID: "CUS-009", Name: "Robert Fox", Email: "robert.fox@example.com", Phone: "+1 (555) 201-1207", Status: CustomerInactive, TotalOrders: 4, TotalSpent: 760.4, JoinDate: "2022-04-11"},
	{ID: "CUS-010", Name: "Kristin Watson", Email: "kristin.watson@example.com", Phone: "+1 (555) 201-3398", Status: CustomerActive, TotalOrders: 15, TotalSpent: 7050, JoinDate: "2023-03-06"},
}

var defaultEmployees = []Employee{
	{ID: "EMP-001", Name: "Darlene Robertson", Email: "darlene@acme.example", Role: "Engineering Manager", Department: "Engineering", Status: EmployeeActive, Salary: 145000, JoinDate: "2020-03-02"},
	{ID: "EMP-002", Name: "Ralph Edwards", Email: "ralph@acme.example", Role: "Senior Developer", Department: "Engineering", Status: EmployeeActive, Salary: 128000, JoinDate: "2021-06-14"},
	{ID: "EMP-003", Name: "Courtney Henry", Email: "courtney@acme.example", Role: "Sales Lead", Department: "Sales", Status: EmployeeActive, Salary: 98000, JoinDate: "2021-01-11"},
	{ID: "EMP-004", Name: "Theresa Webb", Email: "theresa@acme.example", Role: "Account Executive", Department: "Sales", Status: EmployeeOnLeave, Salary: 76000, JoinDate: "2022-09-19"},
	{ID: "EMP-005", Name: "Albert Flores", Email: "albert@acme.example", Role: "Marketing Specialist", Department: "Marketing", Status: EmployeeActive, Salary: 72000, JoinDate: "2022-02-07"},
	{ID: "EMP-006", Name: "Annette Black", Email: "annette@acme.example", Role: "Financial Analyst", Department: "Finance", Status: EmployeeActive, Salary: 88000, JoinDate: "2021-11-01"},
	{ID: "EMP-007", Name: "Marvin McKinney", Email: "marvin@acme.example", Role: "HR Coordinator", Department: "Human Resources", Status: EmployeeTerminated, Salary: 61000, JoinDate: "2020-07-27"},
	{ID: "EMP-008", Name: "Savannah Nguyen", Email: "savannah@acme.example", Role: "Product Designer", Department: "Engineering", Status: EmployeeOnLeave, Salary: 104000, JoinDate: "2023-04-03"},
}

var defaultProducts = []Product{
	{ID: "PRD-001", Name: "Wireless Headphones", SKU: "EL-WH-100", Category: "Electronics", Price: 129.99, Stock: 145, Status: ProductInStock, Sales: 1240, Revenue: 161187.6},
	{ID: "PRD-002", Name: "Smart Watch", SKU: "EL-SW-210", Category: "Electronics", Price: 249, Stock: 12, Status: ProductLowStock, Sales: 860, Revenue: 214140},
	{ID: "PRD-003", Name: "Laptop Stand", SKU: "AC-LS-030", Category: "Accessories", Price: 49.5, Stock: 320, Status: ProductInStock, Sales: 2100, Revenue: 103950},
	{ID: "PRD-004", Name: "USB-C Hub", SKU: "AC-UH-044", Category: "Accessories", Price: 39.99, Stock: 0, Status: ProductOutOfStock, Sales: 1780, Revenue: 71182.2},
	{ID: "PRD-005", Name: "Ergonomic Chair", SKU: "FU-EC-500", Category: "Furniture", Price: 389, Stock: 28, Status: ProductInStock, Sales: 410, Revenue: 159490},
	{ID: "PRD-006", Name: "Standing Desk", SKU: "FU-SD-720", Category: "Furniture", Price: 599, Stock: 6, Status: ProductLowStock, Sales: 230, Revenue: 137770},
	{ID: "PRD-007", Name: "Mechanical Keyboard", SKU: "EL-MK-080", Category: "Electronics", Price: 89.9, Stock: 210, Status: ProductInStock, Sales: 1530, Revenue: 137547},
	{ID: "PRD-008", Name: "Notebook Pack", SKU: "OF-NP-012", Category: "Office Supplies", Price: 12.5, Stock: 1200, Status: ProductInStock, Sales: 5400, Revenue: 67500},
	{ID: "PRD-009", Name: "Desk Lamp", SKU: "FU-DL-110", Category: "Furniture", Price: 45, Stock: 0, Status: ProductOutOfStock, Sales: 640, Revenue: 28800},
	{ID: "PRD-010", Name: "Webcam HD", SKU: "EL-WC-330", Category: "Electronics", Price: 74.99, Stock: 9, Status: ProductLowStock, Sales: 990, Revenue: 74240.1},
	{ID: "PRD-011", Name: "Cable Organizer", SKU: "AC-CO-005", Category: "Accessories", Price: 15, Stock: 480, Status: ProductInStock, Sales: 2650, Revenue: 39750},
	{ID: "PRD-012", Name: "Whiteboard Markers", SKU: "OF-WM-024", Category: "Office Supplies", Price: 8.75, Stock: 75, Status: ProductInStock, Sales: 3120, Revenue: 27300},
}

var defaultOrders = []Order{
	{ID: "ORD-7352", Customer: "Jane Cooper", Email: "jane.cooper@example.com", Date: "2024-06-12", Total: 459.97, Status: OrderCompleted, Items: 3, PaymentMethod: "Credit Card"},
	{ID: "ORD-7351", Customer: "Wade Warren", Email: "wade.warren@example.com", Date: "2024-06-12", Total: 249, Status: OrderProcessing, Items: 1, PaymentMethod: "PayPal"},
	{ID: "ORD-7350", Customer: "Brooklyn Simmons", Email: "brooklyn.s@example.com", Date: "2024-06-11", Total: 1188, Status: OrderShipped, Items: 2, PaymentMethod: "Credit Card"},
	{ID: "ORD-7349", Customer: "Esther Howard", Email: "esther.howard@example.com", Date: "2024-06-11", Total: 89.9, Status: OrderPending, Items: 1, PaymentMethod: "Bank Transfer"},
	{ID: "ORD-7348", Customer: "Jenny Wilson", Email: "jenny.wilson@example.com", Date: "2024-06-10", Total: 214.48, Status: OrderCompleted, Items: 4, PaymentMethod: "Credit Card"},
	{ID: "ORD-7347", Customer: "Guy Hawkins", Email: "guy.hawkins@example.com", Date: "2024-06-10", Total: 39.99, Status: OrderCancelled, Items: 1, PaymentMethod: "PayPal"},
	{ID: "ORD-7346", Customer: "Kristin Watson", Email: "kristin.watson@example.com", Date: "2024-06-09", Total: 674, Status: OrderShipped, Items: 2, PaymentMethod: "Credit Card"},
	{ID: "ORD-7345", Customer: "Leslie Alexander", Email: "leslie.alexander@example.com", Date: "2024-06-09", Total: 129, Status: OrderPending, Items: 1, PaymentMethod: "Credit Card"},
	{ID: "ORD-7344", Customer: "Jane Cooper", Email: "jane.cooper@example.com", Date: "2024-06-08", Total: 99, Status: OrderCompleted, Items: 2, PaymentMethod: "Apple Pay"},
	{ID: "ORD-7343", Customer: "Robert Fox", Email: "robert.fox@example.com", Date: "2024-06-07", Total: 45, Status: OrderProcessing, Items: 1, PaymentMethod: "Bank Transfer"},
	{ID: "ORD-7342", Customer: "Cameron Williamson", Email: "cameron.w@example.com", Date: "2024-06-06", Total: 1377.5, Status: OrderCompleted, Items: 5, PaymentMethod: "Credit Card"},
	{ID: "ORD-7341", Customer: "Wade Warren", Email: "wade.warren@example.com", Date: "2024-06-05", Total: 62.5, Status: OrderCompleted, Items: 5, PaymentMethod: "PayPal"},
}

var defaultKPIs = []KPI{
	{Code: "total_revenue", Label: "Total Revenue", Value: 1245890, Change: 12.5, Period: "vs last month", Format: "currency"},
	{Code: "monthly_sales", Label: "Monthly Sales", Value: 8432, Change: 8.2, Period: "vs last month", Format: "number"},
	{Code: "active_customers", Label: "Active Customers", Value: 2847, Change: 4.3, Period: "vs last month", Format: "number"},
	{Code: "pending_orders", Label: "Pending Orders", Value: 142, Change: -2.4, Period: "vs last week", Format: "number"},
}

var defaultRevenue = []RevenuePoint{
	{Month: "Jan", Revenue: 65000, Profit: 18500},
	{Month: "Feb", Revenue: 72000, Profit: 21000},
	{Month: "Mar", Revenue: 68000, Profit: 19200},
	{Month: "Apr", Revenue: 84000, Profit: 26100},
	{Month: "May", Revenue: 91000, Profit: 28900},
	{Month: "Jun", Revenue: 98000, Profit: 31400},
	{Month: "Jul", Revenue: 105000, Profit: 34800},
	{Month: "Aug", Revenue: 112000, Profit: 36200},
	{Month: "Sep", Revenue: 108000, Profit: 33900},
	{Month: "Oct", Revenue: 118000, Profit: 38700},
	{Month: "Nov", Revenue: 126000, Profit: 41200},
	{Month: "Dec", Revenue: 138000, Profit: 45600},
}

var defaultSales = []SalesPoint{
	{Month: "Jan", Sales: 420, Target: 450},
	{Month: "Feb", Sales: 480, Target: 470},
	{Month: "Mar", Sales: 455, Target: 490},
	{Month: "Apr", Sales: 560, Target: 510},
	{Month: "May", Sales: 610, Target: 540},
	{Month: "Jun", Sales: 650, Target: 570},
	{Month: "Jul", Sales: 700, Target: 600},
	{Month: "Aug", Sales: 720, Target: 630},
	{Month: "Sep", Sales: 690, Target: 660},
	{Month: "Oct", Sales: 760, Target: 690},
	{Month: "Nov", Sales: 810, Target: 720},
	{Month: "Dec", Sales: 880, Target: 750},
}

var defaultCategories = []CategoryShare{
	{Name: "Electronics", Value: 35},
	{Name: "Furniture", Value: 25},
	{Name: "Accessories", Value: 20},
	{Name: "Office Supplies", Value: 12},
	{Name: "Other", Value: 8},
}

var defaultGrowth = []GrowthPoint{
	{Month: "Jan", Users: 1200, Revenue: 65000},
	{Month: "Feb", Users: 1350, Revenue: 72000},
	{Month: "Mar", Users: 1480, Revenue: 68000},
	{Month: "Apr", Users: 1690, Revenue: 84000},
	{Month: "May", Users: 1850, Revenue: 91000},
	{Month: "Jun", Users: 2040, Revenue: 98000},
	{Month: "Jul", Users: 2210, Revenue: 105000},
	{Month: "Aug", Users: 2380, Revenue: 112000},
	{Month: "Sep", Users: 2450, Revenue: 108000},
	{Month: "Oct", Users: 2610, Revenue: 118000},
	{Month: "Nov", Users: 2730, Revenue: 126000},
	{Month: "Dec", Users: 2847, Revenue: 138000},
}

var defaultRegions = []RegionSales{
	{Code: "na", Region: "North America", Sales: 485000},
	{Code: "eu", Region: "Europe", Sales: 372000},
	{Code: "apac", Region: "Asia Pacific", Sales: 291000},
	{Code: "latam", Region: "Latin America", Sales: 97890},
}

var defaultComparisons = []MonthlyComparison{
	{Label: "Revenue", Current: 138000, Previous: 126000},
	{Label: "Orders", Current: 880, Previous: 810},
	{Label: "New Customers", Current: 117, Previous: 120},
	{Label: "Avg. Order Value", Current: 156.8, Previous: 155.6},
}
