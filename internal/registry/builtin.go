// internal/registry/builtin.go
package registry

import "bizplan-engine/internal/models"

// Built-in templates are constants loaded at process start. They author the
// per-field metadata explicitly, so the legacy naming heuristics in
// normalize.go only ever run for imported templates.

func currency(id, name string, def float64) models.FieldSpec {
	return models.FieldSpec{ID: id, Name: name, Type: models.FieldCurrency, DefaultValue: def, Unit: "€"}
}

func number(id, name string, def float64) models.FieldSpec {
	return models.FieldSpec{ID: id, Name: name, Type: models.FieldNumber, DefaultValue: def}
}

func percent(id, name string, def float64) models.FieldSpec {
	return models.FieldSpec{ID: id, Name: name, Type: models.FieldPercentage, DefaultValue: def, Unit: "%"}
}

func boolean(id, name string, def bool) models.FieldSpec {
	f := models.FieldSpec{ID: id, Name: name, Type: models.FieldBoolean}
	if def {
		f.DefaultValue = 1
	}
	return f
}

// headcount and salaryFor build a staffing role pair sharing a role group.
func headcount(id, name string, def float64, group string) models.FieldSpec {
	f := number(id, name, def)
	f.Role = models.RoleCount
	f.RoleGroup = group
	return f
}

func salaryFor(id, name string, def float64, group string) models.FieldSpec {
	f := currency(id, name, def)
	f.Role = models.RoleRate
	f.RoleGroup = group
	return f
}

func perEvent(f models.FieldSpec) models.FieldSpec {
	f.PerEvent = true
	return f
}

func builtinTemplates() map[string]*models.ProjectTypeSchema {
	templates := []*models.ProjectTypeSchema{
		padelTemplate(),
		gymTemplate(),
		fitnessStudioTemplate(),
		saasTemplate(),
		subscriptionBoxTemplate(),
		ecommerceTemplate(),
		consultingTemplate(),
		eventsTemplate(),
		educationTemplate(),
		carRentalTemplate(),
		couponPlatformTemplate(),
		realEstateTemplate(),
		capexTemplate(),
		licensingTemplate(),
		partnershipTemplate(),
		investmentPortfolioTemplate(),
		efficiencyTemplate(),
		contractsTemplate(),
	}
	out := make(map[string]*models.ProjectTypeSchema, len(templates))
	for _, t := range templates {
		out[t.ID] = t
	}
	return out
}

func padelTemplate() *models.ProjectTypeSchema {
	courtCost := currency("courtCost", "Cost per court", 25000)
	courtCost.PerUnitOf = "courts"
	return &models.ProjectTypeSchema{
		ID:           "padel",
		Name:         "Padel Club",
		Description:  "Indoor padel club with peak and off-peak court rental",
		Icon:         "racket",
		BusinessType: "booking",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				courtCost,
				currency("constructionCost", "Construction and fit-out", 120000),
				currency("equipmentCost", "Equipment", 15000),
				currency("licenseCost", "Licenses and permits", 5000),
			},
			Revenue: []models.FieldSpec{
				number("courts", "Number of courts", 3),
				number("peakHours", "Peak hours per day", 4),
				currency("peakRate", "Peak rate per hour", 40),
				percent("peakUtilization", "Peak utilization", 70),
				number("offpeakHours", "Off-peak hours per day", 2),
				currency("offpeakRate", "Off-peak rate per hour", 25),
				percent("offpeakUtilization", "Off-peak utilization", 35),
				number("daysPerWeek", "Open days per week", 7),
				number("weeksPerYear", "Open weeks per year", 52),
			},
			Operating: []models.FieldSpec{
				currency("rent", "Annual rent", 48000),
				currency("utilities", "Utilities", 12000),
				currency("insurance", "Insurance", 4000),
				currency("maintenance", "Court maintenance", 6000),
				currency("marketing", "Marketing", 8000),
			},
			Staffing: []models.FieldSpec{
				headcount("receptionists", "Receptionists", 2, "receptionist"),
				salaryFor("receptionistSalary", "Receptionist salary", 22000, "receptionist"),
				headcount("coaches", "Coaches", 1, "coach"),
				salaryFor("coachSalary", "Coach salary", 28000, "coach"),
			},
		},
	}
}

func gymTemplate() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "gym",
		Name:         "Gym",
		Description:  "Membership gym with weekly, monthly and annual tiers",
		Icon:         "dumbbell",
		BusinessType: "member",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("fitoutCost", "Fit-out", 90000),
				currency("equipmentCost", "Training equipment", 60000),
				currency("itCost", "Access and booking systems", 8000),
			},
			Revenue: []models.FieldSpec{
				number("weeklyMembers", "Weekly members", 60),
				currency("weeklyFee", "Weekly fee", 20),
				number("monthlyMembers", "Monthly members", 30),
				currency("monthlyFee", "Monthly fee", 50),
				number("annualMembers", "Annual members", 12),
				currency("annualFee", "Annual fee", 450),
				boolean("rampUpEnabled", "Apply first-year ramp-up", false),
				number("rampDuration", "Ramp-up duration (months)", 3),
				percent("rampEffect", "Revenue during ramp-up", 40),
			},
			Operating: []models.FieldSpec{
				currency("rent", "Annual rent", 54000),
				currency("utilities", "Utilities", 15000),
				currency("insurance", "Insurance", 5000),
				currency("equipmentService", "Equipment servicing", 7000),
				currency("marketing", "Marketing", 10000),
			},
			Staffing: []models.FieldSpec{
				headcount("trainers", "Trainers", 2, "trainer"),
				salaryFor("trainerSalary", "Trainer salary", 26000, "trainer"),
				headcount("receptionists", "Receptionists", 1, "receptionist"),
				salaryFor("receptionistSalary", "Receptionist salary", 22000, "receptionist"),
				salaryFor("managerSalary", "Manager salary", 38000, "manager"),
			},
		},
	}
}

func fitnessStudioTemplate() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "fitness-studio",
		Name:         "Boutique Fitness Studio",
		Description:  "Small class-based studio on the membership model",
		Icon:         "yoga",
		BusinessType: "member",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("fitoutCost", "Fit-out", 40000),
				currency("equipmentCost", "Studio equipment", 18000),
			},
			Revenue: []models.FieldSpec{
				number("weeklyMembers", "Weekly pass holders", 20),
				currency("weeklyFee", "Weekly pass fee", 25),
				number("monthlyMembers", "Monthly members", 80),
				currency("monthlyFee", "Monthly fee", 65),
				number("annualMembers", "Annual members", 15),
				currency("annualFee", "Annual fee", 600),
				boolean("rampUpEnabled", "Apply first-year ramp-up", true),
				number("rampDuration", "Ramp-up duration (months)", 4),
				percent("rampEffect", "Revenue during ramp-up", 50),
			},
			Operating: []models.FieldSpec{
				currency("rent", "Annual rent", 30000),
				currency("utilities", "Utilities", 6000),
				currency("marketing", "Marketing", 9000),
			},
			Staffing: []models.FieldSpec{
				headcount("instructors", "Instructors", 3, "instructor"),
				salaryFor("instructorSalary", "Instructor salary", 24000, "instructor"),
			},
		},
	}
}

func saasTemplate() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "saas",
		Name:         "SaaS Product",
		Description:  "Tiered subscription software with churn-adjusted users",
		Icon:         "cloud",
		BusinessType: "subscription",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("developmentCost", "Initial development", 150000),
				currency("infrastructureCost", "Infrastructure setup", 12000),
				currency("legalCost", "Legal and compliance", 8000),
			},
			Revenue: []models.FieldSpec{
				number("basicUsers", "Basic tier users", 200),
				currency("basicPrice", "Basic price / month", 19),
				number("proUsers", "Pro tier users", 80),
				currency("proPrice", "Pro price / month", 49),
				number("enterpriseUsers", "Enterprise tier users", 10),
				currency("enterprisePrice", "Enterprise price / month", 199),
				percent("churnRate", "Annual churn", 5),
			},
			Operating: []models.FieldSpec{
				currency("hosting", "Hosting", 18000),
				currency("tooling", "Tooling and licenses", 6000),
				currency("marketing", "Marketing", 30000),
			},
			Staffing: []models.FieldSpec{
				headcount("developers", "Developers", 3, "developer"),
				salaryFor("developerSalary", "Developer salary", 55000, "developer"),
				headcount("supportAgents", "Support agents", 1, "supportAgent"),
				salaryFor("supportAgentSalary", "Support agent salary", 30000, "supportAgent"),
			},
		},
	}
}

func subscriptionBoxTemplate() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "subscription-box",
		Name:         "Subscription Box",
		Description:  "Single-tier recurring subscription with churn adjustment",
		Icon:         "box",
		BusinessType: "subscription",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("brandingCost", "Branding and packaging design", 10000),
				currency("stockCost", "Initial stock", 25000),
			},
			Revenue: []models.FieldSpec{
				number("subscribers", "Active subscribers", 500),
				currency("monthlyFee", "Monthly fee", 35),
				percent("churnRate", "Annual churn", 8),
			},
			Operating: []models.FieldSpec{
				currency("fulfillment", "Fulfillment and shipping", 60000),
				currency("warehousing", "Warehousing", 12000),
				currency("marketing", "Marketing", 25000),
			},
			Staffing: []models.FieldSpec{
				headcount("packers", "Packers", 2, "packer"),
				salaryFor("packerSalary", "Packer salary", 21000, "packer"),
			},
		},
	}
}

func ecommerceTemplate() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "ecommerce",
		Name:         "E-commerce Store",
		Description:  "Online store margin model with returns",
		Icon:         "cart",
		BusinessType: "product",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("platformCost", "Platform build", 20000),
				currency("stockCost", "Initial stock", 40000),
			},
			Revenue: []models.FieldSpec{
				currency("avgOrderValue", "Average order value", 65),
				number("ordersPerMonth", "Orders per month", 400),
				percent("returnRate", "Return rate", 6),
				percent("grossMargin", "Gross margin", 42),
			},
			Operating: []models.FieldSpec{
				currency("hosting", "Hosting and apps", 4000),
				currency("shipping", "Shipping subsidies", 14000),
				currency("marketing", "Marketing", 36000),
			},
			Staffing: []models.FieldSpec{
				headcount("operators", "Store operators", 1, "operator"),
				salaryFor("operatorSalary", "Operator salary", 28000, "operator"),
			},
		},
	}
}

func consultingTemplate() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "consulting",
		Name:         "Consulting Practice",
		Description:  "Billable-hours practice with utilization",
		Icon:         "briefcase",
		BusinessType: "service",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("officeSetup", "Office setup", 12000),
				currency("itCost", "IT and software", 6000),
			},
			Revenue: []models.FieldSpec{
				currency("hourlyRate", "Hourly rate", 120),
				number("billableHours", "Billable hours per week", 30),
				number("weeksPerYear", "Working weeks per year", 46),
				percent("utilization", "Utilization", 75),
			},
			Operating: []models.FieldSpec{
				currency("officeRent", "Office rent", 18000),
				currency("travel", "Travel", 8000),
				currency("insurance", "Professional insurance", 3000),
			},
			Staffing: []models.FieldSpec{
				headcount("consultants", "Consultants", 1, "consultant"),
				salaryFor("consultantSalary", "Consultant salary", 48000, "consultant"),
			},
		},
	}
}

func eventsTemplate() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "events",
		Name:         "Event Venue",
		Description:  "Ticketed events with sponsorship income",
		Icon:         "ticket",
		BusinessType: "event",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("venueFitout", "Venue fit-out", 80000),
				currency("stageEquipment", "Stage and sound equipment", 35000),
			},
			Revenue: []models.FieldSpec{
				number("capacity", "Venue capacity", 300),
				currency("ticketPrice", "Ticket price", 45),
				percent("occupancy", "Average occupancy", 80),
				number("eventsPerYear", "Events per year", 24),
				currency("sponsorshipRevenue", "Sponsorship revenue", 20000),
			},
			Operating: []models.FieldSpec{
				currency("venueRent", "Venue rent", 60000),
				perEvent(currency("eventCatering", "Catering per event", 1500)),
				perEvent(currency("eventSecurity", "Security per event", 600)),
				currency("marketing", "Marketing", 15000),
			},
			Staffing: []models.FieldSpec{
				perEvent(headcount("eventStaff", "Event staff per event", 6, "eventStaff")),
				perEvent(salaryFor("eventStaffRate", "Event staff fee per event", 120, "eventStaff")),
				salaryFor("managerSalary", "Venue manager salary", 36000, "manager"),
			},
		},
	}
}

func educationTemplate() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "education",
		Name:         "Workshops & Courses",
		Description:  "Session-based education with capacity and occupancy",
		Icon:         "graduation",
		BusinessType: "service",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("classroomSetup", "Classroom setup", 15000),
				currency("materialsCost", "Course materials", 5000),
			},
			Revenue: []models.FieldSpec{
				number("studentCapacity", "Students per session", 16),
				currency("tuitionFee", "Tuition fee per student", 350),
				number("sessionsPerYear", "Sessions per year", 20),
				percent("occupancy", "Average occupancy", 85),
			},
			Operating: []models.FieldSpec{
				currency("roomRent", "Room rent", 12000),
				currency("materials", "Consumable materials", 4000),
				currency("marketing", "Marketing", 6000),
			},
			Staffing: []models.FieldSpec{
				headcount("teachers", "Teachers", 1, "teacher"),
				salaryFor("teacherSalary", "Teacher salary", 32000, "teacher"),
			},
		},
	}
}

func carRentalTemplate() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "car-rental",
		Name:         "Vehicle Rental Fleet",
		Description:  "Daily-rate fleet rental with utilization",
		Icon:         "car",
		BusinessType: "rental",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("fleetCost", "Fleet acquisition", 240000),
				currency("depotCost", "Depot setup", 20000),
			},
			Revenue: []models.FieldSpec{
				number("vehicles", "Vehicles in fleet", 12),
				currency("dailyRate", "Daily rate", 55),
				percent("utilization", "Fleet utilization", 65),
			},
			Operating: []models.FieldSpec{
				currency("maintenance", "Maintenance", 24000),
				currency("insurance", "Fleet insurance", 18000),
				currency("parking", "Parking and depot", 9000),
			},
			Staffing: []models.FieldSpec{
				headcount("agents", "Rental agents", 2, "agent"),
				salaryFor("agentSalary", "Agent salary", 24000, "agent"),
			},
		},
	}
}

func couponPlatformTemplate() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "coupon-platform",
		Name:         "Deals & Coupons Platform",
		Description:  "Commission on redeemed merchant deals",
		Icon:         "tag",
		BusinessType: "partner",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("platformCost", "Platform build", 60000),
				currency("salesSetup", "Merchant acquisition setup", 15000),
			},
			Revenue: []models.FieldSpec{
				number("merchants", "Active merchants", 120),
				number("dealsPerMonth", "Deals per merchant per month", 3),
				percent("redemptionRate", "Redemption rate", 30),
				currency("avgDealValue", "Average deal value", 40),
				percent("commissionRate", "Commission", 25),
			},
			Operating: []models.FieldSpec{
				currency("hosting", "Hosting", 8000),
				currency("support", "Merchant support", 12000),
				currency("marketing", "Marketing", 30000),
			},
			Staffing: []models.FieldSpec{
				headcount("salesReps", "Sales reps", 2, "salesRep"),
				salaryFor("salesRepSalary", "Sales rep salary", 30000, "salesRep"),
			},
		},
	}
}

func realEstateTemplate() *models.ProjectTypeSchema {
	managementFee := percent("managementFee", "Property management fee", 8)
	return &models.ProjectTypeSchema{
		ID:           "realestate",
		Name:         "Rental Property",
		Description:  "Buy-to-let property with optional property management",
		Icon:         "house",
		BusinessType: "rental",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("purchasePrice", "Purchase price", 420000),
				currency("renovationCost", "Renovation", 35000),
				currency("closingCosts", "Closing costs", 12000),
			},
			Revenue: []models.FieldSpec{
				currency("monthlyRent", "Monthly rent", 2400),
				percent("occupancy", "Occupancy", 92),
				percent("rentIncrease", "Annual rent increase", 3),
				currency("otherIncome", "Other income", 1500),
			},
			Operating: []models.FieldSpec{
				currency("propertyTax", "Property tax", 4200),
				currency("insurance", "Insurance", 1800),
				currency("maintenance", "Maintenance reserve", 3600),
			},
			Staffing: []models.FieldSpec{
				boolean("propertyManager", "Use property manager", false),
				managementFee,
				salaryFor("handymanRate", "Handyman hourly rate", 35, "handyman"),
				number("handymanHours", "Handyman hours per month", 10),
			},
		},
	}
}

func capexTemplate() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "capex",
		Name:         "CapEx Project",
		Description:  "Capital project with phased benefit realization",
		Icon:         "factory",
		BusinessType: "investment",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("hardwareCost", "Hardware", 180000),
				currency("softwareCost", "Software licenses", 60000),
				currency("integrationCost", "Integration", 45000),
			},
			Revenue: []models.FieldSpec{
				currency("costSavings", "Annual cost savings", 80000),
				currency("revenueIncrease", "Annual revenue increase", 40000),
				number("implementationMonths", "Implementation time (months)", 4),
				number("rampUpMonths", "Ramp-up period (months)", 2),
			},
			Operating: []models.FieldSpec{
				currency("maintenanceContract", "Maintenance contract", 20000),
				currency("training", "Training", 8000),
			},
			Staffing: []models.FieldSpec{
				boolean("projectManager", "Dedicated project manager", true),
				salaryFor("pmRate", "Project manager hourly rate", 95, "pm"),
				number("pmHours", "Project manager hours", 600),
				salaryFor("techRate", "Technical staff hourly rate", 80, "tech"),
				number("techHours", "Technical staff hours", 900),
				currency("ongoingStaff", "Ongoing staff cost per year", 25000),
			},
		},
	}
}

func licensingTemplate() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "licensing",
		Name:         "Licensing Business",
		Description:  "Royalty income plus upfront license fees",
		Icon:         "certificate",
		BusinessType: "partner",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("ipDevelopment", "IP development", 100000),
				currency("legalCost", "Legal protection", 20000),
			},
			Revenue: []models.FieldSpec{
				number("licensees", "Active licensees", 15),
				currency("avgLicenseeRevenue", "Average licensee revenue", 120000),
				percent("royaltyRate", "Royalty rate", 6),
				number("newLicenses", "New licenses per year", 4),
				currency("upfrontFee", "Upfront license fee", 25000),
			},
			Operating: []models.FieldSpec{
				currency("compliance", "Audit and compliance", 10000),
				currency("marketing", "Partner marketing", 12000),
			},
			Staffing: []models.FieldSpec{
				headcount("accountManagers", "Account managers", 1, "accountManager"),
				salaryFor("accountManagerSalary", "Account manager salary", 42000, "accountManager"),
			},
		},
	}
}

func partnershipTemplate() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "partnership",
		Name:         "Revenue-Share Partnership",
		Description:  "Share of partner-generated revenue",
		Icon:         "handshake",
		BusinessType: "partner",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("onboardingCost", "Partner onboarding", 30000),
			},
			Revenue: []models.FieldSpec{
				number("partners", "Active partners", 8),
				currency("avgPartnerRevenue", "Average partner revenue", 250000),
				percent("revenueShare", "Revenue share", 12),
			},
			Operating: []models.FieldSpec{
				currency("partnerSupport", "Partner support", 15000),
				currency("events", "Partner events", 8000),
			},
			Staffing: []models.FieldSpec{
				headcount("partnerManagers", "Partner managers", 1, "partnerManager"),
				salaryFor("partnerManagerSalary", "Partner manager salary", 45000, "partnerManager"),
			},
		},
	}
}

func investmentPortfolioTemplate() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "investment-portfolio",
		Name:         "Investment Portfolio",
		Description:  "Dividend and capital-gains returns on a portfolio",
		Icon:         "chart",
		BusinessType: "investment",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("initialCapital", "Initial capital", 1500000),
			},
			Revenue: []models.FieldSpec{
				currency("portfolioValue", "Portfolio value", 1500000),
				percent("dividendYield", "Dividend yield", 3.2),
				percent("capitalGains", "Expected capital gains", 4.5),
			},
			Operating: []models.FieldSpec{
				currency("custodyFees", "Custody fees", 4500),
				currency("advisoryFees", "Advisory fees", 9000),
			},
			Staffing: []models.FieldSpec{},
		},
	}
}

func efficiencyTemplate() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "efficiency",
		Name:         "Operational Efficiency Program",
		Description:  "Cost savings and productivity gains scaled by adoption",
		Icon:         "gauge",
		BusinessType: "investment",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("toolingCost", "Tooling", 70000),
				currency("consultingCost", "Implementation consulting", 40000),
			},
			Revenue: []models.FieldSpec{
				currency("costSavings", "Annual cost savings", 150000),
				currency("productivityGains", "Productivity gains", 90000),
				percent("adoptionRate", "Adoption rate", 70),
			},
			Operating: []models.FieldSpec{
				currency("supportContract", "Support contract", 15000),
			},
			Staffing: []models.FieldSpec{
				headcount("changeManagers", "Change managers", 1, "changeManager"),
				salaryFor("changeManagerSalary", "Change manager salary", 50000, "changeManager"),
			},
		},
	}
}

func contractsTemplate() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "contracts",
		Name:         "Recurring Contracts",
		Description:  "Renewal-adjusted recurring contract revenue",
		Icon:         "document",
		BusinessType: "subscription",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{
				currency("salesSetup", "Sales setup", 25000),
			},
			Revenue: []models.FieldSpec{
				number("activeContracts", "Active contracts", 25),
				currency("avgContractValue", "Average contract value", 18000),
				percent("renewalRate", "Renewal rate", 85),
				number("newContractsPerYear", "New contracts per year", 6),
			},
			Operating: []models.FieldSpec{
				currency("accountTooling", "Account tooling", 6000),
				currency("travel", "Client travel", 9000),
			},
			Staffing: []models.FieldSpec{
				headcount("accountManagers", "Account managers", 2, "accountManager"),
				salaryFor("accountManagerSalary", "Account manager salary", 40000, "accountManager"),
			},
		},
	}
}
