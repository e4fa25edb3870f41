// internal/engine/strategies.go
package engine

// timeSlotStrategy prices rentable time slots (e.g. padel courts): peak and
// off-peak hours priced separately, both scaled by the unit count and the
// slot's utilization.
type timeSlotStrategy struct{}

func (timeSlotStrategy) Name() string { return "time-slot" }

func (timeSlotStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	units := in.Value("courts")
	days := in.Value("daysPerWeek")
	weeks := in.Value("weeksPerYear")

	peak := in.Value("peakHours") * in.Value("peakRate") * days * weeks * units * (in.Value("peakUtilization") / 100)
	offpeak := in.Value("offpeakHours") * in.Value("offpeakRate") * days * weeks * units * (in.Value("offpeakUtilization") / 100)

	return peak + offpeak, map[string]float64{
		"peak":    peak,
		"offpeak": offpeak,
		"units":   units,
	}
}

// membershipStrategy sums weekly/monthly/annual membership tiers, with an
// optional first-year ramp-up: rampDuration months at rampEffect percent of
// the monthly base, the remaining months at full base.
type membershipStrategy struct{}

func (membershipStrategy) Name() string { return "membership" }

func (membershipStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	weekly := in.Value("weeklyMembers") * in.Value("weeklyFee") * 52
	monthly := in.Value("monthlyMembers") * in.Value("monthlyFee") * 12
	annual := in.Value("annualMembers") * in.Value("annualFee")
	total := weekly + monthly + annual

	breakdown := map[string]float64{
		"weeklyTier":  weekly,
		"monthlyTier": monthly,
		"annualTier":  annual,
	}

	if in.Flag("rampUpEnabled") {
		duration := in.Value("rampDuration")
		if duration > 12 {
			duration = 12
		}
		effect := in.Value("rampEffect") / 100
		monthlyBase := total / 12
		ramped := duration*monthlyBase*effect + (12-duration)*monthlyBase
		breakdown["preRampTotal"] = total
		breakdown["rampMonths"] = duration
		total = ramped
	}
	return total, breakdown
}

// tieredSubscriptionStrategy sums basic/pro/enterprise tiers; each tier's
// user count is discounted by half the churn rate as a simplified
// average-over-year approximation, monthly total times 12.
type tieredSubscriptionStrategy struct{}

func (tieredSubscriptionStrategy) Name() string { return "tiered-subscription" }

func (tieredSubscriptionStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	retention := 1 - in.Value("churnRate")/100/2
	basic := in.Value("basicUsers") * retention * in.Value("basicPrice")
	pro := in.Value("proUsers") * retention * in.Value("proPrice")
	enterprise := in.Value("enterpriseUsers") * retention * in.Value("enterprisePrice")
	monthly := basic + pro + enterprise
	return monthly * 12, map[string]float64{
		"basicTier":      basic * 12,
		"proTier":        pro * 12,
		"enterpriseTier": enterprise * 12,
		"retention":      retention,
	}
}

// churnSubscriptionStrategy is the single-tier variant of the same
// churn-adjusted subscription arithmetic.
type churnSubscriptionStrategy struct{}

func (churnSubscriptionStrategy) Name() string { return "churn-subscription" }

func (churnSubscriptionStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	retention := 1 - in.Value("churnRate")/100/2
	annual := in.Value("subscribers") * retention * in.Value("monthlyFee") * 12
	return annual, map[string]float64{
		"subscribers": in.Value("subscribers"),
		"retention":   retention,
	}
}

type ecommerceStrategy struct{}

func (ecommerceStrategy) Name() string { return "ecommerce" }

func (ecommerceStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	gross := in.Value("avgOrderValue") * in.Value("ordersPerMonth") * 12
	kept := gross * (1 - in.Value("returnRate")/100)
	margin := kept * (in.Value("grossMargin") / 100)
	return margin, map[string]float64{
		"grossSales":   gross,
		"afterReturns": kept,
		"marginTotal":  margin,
	}
}

type hourlyStrategy struct{}

func (hourlyStrategy) Name() string { return "hourly" }

func (hourlyStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	hours := in.Value("billableHours") * in.Value("weeksPerYear")
	billed := hours * (in.Value("utilization") / 100)
	annual := billed * in.Value("hourlyRate")
	return annual, map[string]float64{
		"availableHours": hours,
		"billedHours":    billed,
	}
}

type ticketedStrategy struct{}

func (ticketedStrategy) Name() string { return "ticketed" }

func (ticketedStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	tickets := in.Value("capacity") * in.Value("ticketPrice") * (in.Value("occupancy") / 100) * in.Value("eventsPerYear")
	sponsorship := in.Value("sponsorshipRevenue")
	return tickets + sponsorship, map[string]float64{
		"ticketSales": tickets,
		"sponsorship": sponsorship,
	}
}

type workshopStrategy struct{}

func (workshopStrategy) Name() string { return "workshop" }

func (workshopStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	annual := in.Value("studentCapacity") * in.Value("tuitionFee") * in.Value("sessionsPerYear") * (in.Value("occupancy") / 100)
	return annual, map[string]float64{
		"sessions": in.Value("sessionsPerYear"),
		"tuition":  annual,
	}
}

type fleetStrategy struct{}

func (fleetStrategy) Name() string { return "fleet" }

func (fleetStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	rentedDays := in.Value("vehicles") * 365 * (in.Value("utilization") / 100)
	annual := rentedDays * in.Value("dailyRate")
	return annual, map[string]float64{
		"rentedDays": rentedDays,
	}
}

type couponStrategy struct{}

func (couponStrategy) Name() string { return "coupon" }

func (couponStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	redeemedMonthly := in.Value("merchants") * in.Value("dealsPerMonth") * (in.Value("redemptionRate") / 100)
	commission := redeemedMonthly * in.Value("avgDealValue") * (in.Value("commissionRate") / 100)
	return commission * 12, map[string]float64{
		"redeemedDealsPerMonth": redeemedMonthly,
		"monthlyCommission":     commission,
	}
}

// rentalYieldStrategy annualizes rent at the given occupancy; the
// half-weighted rent increase approximates a mid-year raise. Kept as the
// literal legacy formula.
type rentalYieldStrategy struct{}

func (rentalYieldStrategy) Name() string { return "rental-yield" }

func (rentalYieldStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	baseRent := in.Value("monthlyRent") * 12 * (in.Value("occupancy") / 100)
	adjusted := baseRent * (1 + in.Value("rentIncrease")/100/2)
	other := in.Value("otherIncome")
	return adjusted + other, map[string]float64{
		"baseRent":     baseRent,
		"adjustedRent": adjusted,
		"otherIncome":  other,
	}
}

// phasedBenefitStrategy models CapEx benefit realization: no benefit while
// implementation plus ramp-up cover the year; otherwise benefits accrue for
// the remaining months, halved while a ramp-up period exists.
type phasedBenefitStrategy struct{}

func (phasedBenefitStrategy) Name() string { return "phased-benefit" }

func (phasedBenefitStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	implementation := in.Value("implementationMonths")
	rampUp := in.Value("rampUpMonths")
	potential := in.Value("costSavings") + in.Value("revenueIncrease")

	breakdown := map[string]float64{
		"annualPotential":      potential,
		"implementationMonths": implementation,
		"rampUpMonths":         rampUp,
	}

	if implementation+rampUp >= 12 {
		breakdown["monthsWithBenefit"] = 0
		return 0, breakdown
	}

	monthsWithBenefit := 12 - (implementation + rampUp)
	rampFactor := 1.0
	if rampUp > 0 {
		rampFactor = 0.5
	}
	benefit := potential * (monthsWithBenefit / 12) * rampFactor
	breakdown["monthsWithBenefit"] = monthsWithBenefit
	breakdown["rampFactor"] = rampFactor
	return benefit, breakdown
}

type royaltyStrategy struct{}

func (royaltyStrategy) Name() string { return "royalty" }

func (royaltyStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	royalties := in.Value("licensees") * in.Value("avgLicenseeRevenue") * (in.Value("royaltyRate") / 100)
	upfront := in.Value("newLicenses") * in.Value("upfrontFee")
	return royalties + upfront, map[string]float64{
		"royalties":   royalties,
		"upfrontFees": upfront,
	}
}

type revenueShareStrategy struct{}

func (revenueShareStrategy) Name() string { return "revenue-share" }

func (revenueShareStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	share := in.Value("partners") * in.Value("avgPartnerRevenue") * (in.Value("revenueShare") / 100)
	return share, map[string]float64{
		"partnerRevenueShare": share,
	}
}

type portfolioReturnStrategy struct{}

func (portfolioReturnStrategy) Name() string { return "portfolio-return" }

func (portfolioReturnStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	value := in.Value("portfolioValue")
	dividends := value * (in.Value("dividendYield") / 100)
	gains := value * (in.Value("capitalGains") / 100)
	return dividends + gains, map[string]float64{
		"dividends":    dividends,
		"capitalGains": gains,
	}
}

type efficiencyStrategy struct{}

func (efficiencyStrategy) Name() string { return "efficiency" }

func (efficiencyStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	realized := (in.Value("costSavings") + in.Value("productivityGains")) * (in.Value("adoptionRate") / 100)
	return realized, map[string]float64{
		"realizedGains": realized,
	}
}

type renewalStrategy struct{}

func (renewalStrategy) Name() string { return "renewal" }

func (renewalStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	renewed := in.Value("activeContracts") * in.Value("avgContractValue") * (in.Value("renewalRate") / 100)
	newBusiness := in.Value("newContractsPerYear") * in.Value("avgContractValue")
	return renewed + newBusiness, map[string]float64{
		"renewedContracts": renewed,
		"newContracts":     newBusiness,
	}
}
