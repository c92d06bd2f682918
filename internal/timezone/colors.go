package timezone

import "time"

// colors holds one RGB value per half hour of the day, indexed by
// hour*2 + (minute>=30 ? 1 : 0). Hand-tuned gradient: cool blues overnight,
// warm sunrise tones, bright daylight blues, sunset purples and oranges.
var colors = [48]int{
	0x8F82FF, // 12:00 AM -- midnight
	0x998DFF, // 12:30 AM
	0xA398FF, // 01:00 AM
	0xACA4FF, // 01:30 AM
	0xB5AFFF, // 02:00 AM
	0xBEBBFF, // 02:30 AM
	0xC6C6FF, // 03:00 AM
	0xCED2FF, // 03:30 AM
	0xD5DDFF, // 04:00 AM
	0xDDE9FF, // 04:30 AM
	0xE4F5FF, // 05:00 AM
	0xD5C1C3, // 05:30 AM
	0xC08F89, // 06:00 AM
	0xA75E54, // 06:30 AM
	0xB4523D, // 07:00 AM
	0xC04325, // 07:30 AM
	0xCA3005, // 08:00 AM
	0xE2284A, // 08:30 AM
	0xE93E82, // 09:00 AM
	0xDF5EB5, // 09:30 AM
	0xC67FDE, // 10:00 AM
	0xA49BF9, // 10:30 AM
	0x81B4FF, // 11:00 AM
	0x6CC8FF, // 11:30 AM
	0x71D9FF, // 12:00 PM -- midday
	0x60D2FF, // 12:30 PM
	0x4FCBFF, // 01:00 PM
	0x3DC3FF, // 01:30 PM
	0x2ABBFF, // 02:00 PM
	0x14B4FF, // 02:30 PM
	0x00ABFF, // 03:00 PM
	0x00A3FF, // 03:30 PM
	0x009AFF, // 04:00 PM
	0x649EFF, // 04:30 PM
	0x8FA2FF, // 05:00 PM
	0xB0A6FF, // 05:30 PM
	0xCCABFF, // 06:00 PM
	0xE3B1FF, // 06:30 PM
	0xEAA2DD, // 07:00 PM
	0xF190B4, // 07:30 PM
	0xF87D80, // 08:00 PM
	0xFF6600, // 08:30 PM
	0xDF6480, // 09:00 PM
	0xBA63B4, // 09:30 PM
	0x8B61DD, // 10:00 PM
	0x415FFF, // 10:30 PM
	0x626AFF, // 11:00 PM
	0x7A76FF, // 11:30 PM
}

// ColorFor returns the role color for a local time, one entry per half hour.
func ColorFor(local time.Time) int {
	index := local.Hour() * 2
	if local.Minute() >= 30 {
		index++
	}
	return colors[index]
}
