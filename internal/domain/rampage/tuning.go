package rampage

const (
	DefaultTurnLimit      = 15
	DefaultStartingBudget = 200

	DefaultCommandCost = 25

	LowBuildingPowerPerFloor  = 250
	HighBuildingPowerPerFloor = 500

	RedInitialPower   = 1000
	GreenInitialPower = 2000
	BlueInitialPower  = 3000

	RedPriorityTier   = 1
	GreenPriorityTier = 2
	BluePriorityTier  = 3

	FirstArrivalBonus       = 2000
	SecondArrivalMultiplier = 3
	ThirdArrivalMultiplier  = 5
	BedArrivalsWithBonus    = 3
)
