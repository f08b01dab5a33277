package model

// Spreadsheet column letters for one league row. Values may be empty,
// multi-line, or malformed; only the presence of the key is required.
const (
	ColSportName      = "A"
	ColDayDetails     = "B"
	ColNotes          = "C"
	ColLocation       = "D"
	ColSeasonStart    = "E"
	ColSeasonEnd      = "F"
	ColPlayTimes      = "G"
	ColPrice          = "H"
	ColTotalInventory = "I"
	ColEarlyReg       = "M"
	ColVetReg         = "N"
	ColOpenReg        = "O"
)

// RequiredColumns lists every column key a structurally valid row must carry.
var RequiredColumns = []string{
	ColSportName,
	ColDayDetails,
	ColNotes,
	ColLocation,
	ColSeasonStart,
	ColSeasonEnd,
	ColPlayTimes,
	ColPrice,
	ColTotalInventory,
	ColEarlyReg,
	ColVetReg,
	ColOpenReg,
}

// RowInput maps column letter to the raw cell string as read from the sheet.
type RowInput map[string]string
