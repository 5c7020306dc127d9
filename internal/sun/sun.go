// Package sun computes sunrise, sunset and solar-noon times from a
// latitude/longitude using the standard NOAA solar-position equations.
// No example repo in the reference pack carries an astronomical-position
// library, so this stays on the standard math/time packages rather than
// reaching for a third-party dependency that was never demonstrated.
package sun

import (
	"math"
	"time"
)

// Coordinates is a site's geographic location in decimal degrees,
// positive north/east.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// julianDay returns the Julian day number for the UTC midnight of date.
func julianDay(date time.Time) float64 {
	y, m, d := date.Date()
	if m <= 2 {
		y--
		m += 12
	}
	a := float64(y / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*float64(y+4716)) + math.Floor(30.6001*float64(m+1)) + float64(d) + b - 1524.5
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
func toDeg(rad float64) float64 { return rad * 180 / math.Pi }

// solarNoonAndHourAngle returns the fractional-day (UTC) of solar noon
// and the hour angle (degrees) of sunrise/sunset at zenith 90.833° (the
// standard atmospheric-refraction correction for the apparent horizon).
func solarNoonAndHourAngle(jd float64, coords Coordinates) (noonFrac, hourAngle float64, ok bool) {
	jcentury := (jd - 2451545.0) / 36525.0

	geomMeanLongSun := math.Mod(280.46646+jcentury*(36000.76983+jcentury*0.0003032), 360)
	geomMeanAnomSun := 357.52911 + jcentury*(35999.05029-0.0001537*jcentury)
	eccentEarthOrbit := 0.016708634 - jcentury*(0.000042037+0.0000001267*jcentury)

	sunEqOfCtr := math.Sin(toRad(geomMeanAnomSun))*(1.914602-jcentury*(0.004817+0.000014*jcentury)) +
		math.Sin(toRad(2*geomMeanAnomSun))*(0.019993-0.000101*jcentury) +
		math.Sin(toRad(3*geomMeanAnomSun))*0.000289
	sunTrueLong := geomMeanLongSun + sunEqOfCtr
	sunAppLong := sunTrueLong - 0.00569 - 0.00478*math.Sin(toRad(125.04-1934.136*jcentury))

	meanObliqEcliptic := 23 + (26+(21.448-jcentury*(46.815+jcentury*(0.00059-jcentury*0.001813)))/60)/60
	obliqCorr := meanObliqEcliptic + 0.00256*math.Cos(toRad(125.04-1934.136*jcentury))

	sunDeclin := toDeg(math.Asin(math.Sin(toRad(obliqCorr)) * math.Sin(toRad(sunAppLong))))

	varY := math.Tan(toRad(obliqCorr/2)) * math.Tan(toRad(obliqCorr/2))
	eqOfTime := 4 * toDeg(varY*math.Sin(2*toRad(geomMeanLongSun))-
		2*eccentEarthOrbit*math.Sin(toRad(geomMeanAnomSun))+
		4*eccentEarthOrbit*varY*math.Sin(toRad(geomMeanAnomSun))*math.Cos(2*toRad(geomMeanLongSun))-
		0.5*varY*varY*math.Sin(4*toRad(geomMeanLongSun))-
		1.25*eccentEarthOrbit*eccentEarthOrbit*math.Sin(2*toRad(geomMeanAnomSun)))

	cosHourAngle := math.Cos(toRad(90.833))/(math.Cos(toRad(coords.Latitude))*math.Cos(toRad(sunDeclin))) -
		math.Tan(toRad(coords.Latitude))*math.Tan(toRad(sunDeclin))
	if cosHourAngle < -1 || cosHourAngle > 1 {
		return 0, 0, false
	}
	hourAngle = toDeg(math.Acos(cosHourAngle))

	noonFrac = (720 - 4*coords.Longitude - eqOfTime) / 1440
	return noonFrac, hourAngle, true
}

// fracDayToTime converts a fractional UTC day (0..1) on the calendar day
// of date into a concrete time.Time in loc.
func fracDayToTime(date time.Time, frac float64, loc *time.Location) time.Time {
	y, m, d := date.Date()
	midnightUTC := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	secs := frac * 86400
	return midnightUTC.Add(time.Duration(secs * float64(time.Second))).In(loc)
}

// SolarNoon returns the solar-noon instant for date at coords, rendered
// in loc. Unlike Sunrise and Sunset it has no ok result: solar noon is
// defined even at latitudes where the sun never crosses the horizon on
// that date (polar day/night).
func SolarNoon(date time.Time, coords Coordinates, loc *time.Location) time.Time {
	jd := julianDay(date)
	noonFrac, _, _ := solarNoonAndHourAngle(jd, coords)
	return fracDayToTime(date, noonFrac, loc)
}

// Sunrise returns the sunrise instant for date at coords. ok is false if
// the sun does not rise on that date at that latitude.
func Sunrise(date time.Time, coords Coordinates, loc *time.Location) (t time.Time, ok bool) {
	jd := julianDay(date)
	noonFrac, hourAngle, ok := solarNoonAndHourAngle(jd, coords)
	if !ok {
		return time.Time{}, false
	}
	frac := noonFrac - hourAngle*4/1440
	return fracDayToTime(date, frac, loc), true
}

// Sunset returns the sunset instant for date at coords. ok is false if
// the sun does not set on that date at that latitude.
func Sunset(date time.Time, coords Coordinates, loc *time.Location) (t time.Time, ok bool) {
	jd := julianDay(date)
	noonFrac, hourAngle, ok := solarNoonAndHourAngle(jd, coords)
	if !ok {
		return time.Time{}, false
	}
	frac := noonFrac + hourAngle*4/1440
	return fracDayToTime(date, frac, loc), true
}
