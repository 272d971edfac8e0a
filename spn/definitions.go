package spn

// DefaultDefinitions is the built-in SPN table covering the most common parameter groups
// broadcast by diesel generators, industrial engines and heavy-duty vehicles.
//
// Fields in order: SPN, Name, PGN, StartByte, StartBit, BitLength, Scale, Offset, Unit, NotAvailable
var DefaultDefinitions = []Definition{
	// EEC1 - Electronic Engine Controller 1 (PGN 61444 / 0xF004), broadcast every 10-100ms
	{899, "engine_torque_mode", 61444, 0, 0, 4, 1, 0, "", 0xF},
	{4154, "actual_engine_retarder_percent", 61444, 1, 0, 8, 1, -125, "%", 0xFF},
	{512, "drivers_demand_engine_percent", 61444, 1, 0, 8, 1, -125, "%", 0xFF},
	{513, "actual_engine_percent_torque", 61444, 2, 0, 8, 1, -125, "%", 0xFF},
	{190, "engine_speed", 61444, 3, 0, 16, 0.125, 0, "RPM", 0xFFFF},
	{1483, "eec1_source_address", 61444, 5, 0, 8, 1, 0, "", 0xFF},
	{1675, "engine_starter_mode", 61444, 6, 0, 4, 1, 0, "", 0xF},
	{2432, "engine_demand_percent_torque", 61444, 7, 0, 8, 1, -125, "%", 0xFF},

	// EEC2 - Electronic Engine Controller 2 (PGN 61443 / 0xF003), broadcast every 50ms
	{558, "accelerator_pedal_1_low_switch", 61443, 0, 0, 2, 1, 0, "", 0x3},
	{559, "accelerator_pedal_kickdown", 61443, 0, 2, 2, 1, 0, "", 0x3},
	{1437, "road_speed_limit_status", 61443, 0, 4, 2, 1, 0, "", 0x3},
	{2970, "accelerator_pedal_2_low_switch", 61443, 0, 6, 2, 1, 0, "", 0x3},
	{91, "accelerator_pedal_position_1", 61443, 1, 0, 8, 0.4, 0, "%", 0xFF},
	{92, "percent_load_current_speed", 61443, 2, 0, 8, 1, 0, "%", 0xFF},
	{974, "remote_accelerator_position", 61443, 3, 0, 8, 0.4, 0, "%", 0xFF},
	{29, "accelerator_pedal_position_2", 61443, 4, 0, 8, 0.4, 0, "%", 0xFF},
	{2979, "vehicle_acceleration_rate_limit", 61443, 5, 0, 8, 1, 0, "", 0xFF},
	{5021, "momentary_engine_max_power_enable", 61443, 6, 0, 2, 1, 0, "", 0x3},

	// EEC3 - Electronic Engine Controller 3 (PGN 65247 / 0xFEDF), broadcast every 250ms
	{514, "nominal_friction_percent_torque", 65247, 0, 0, 8, 1, -125, "%", 0xFF},
	{515, "engine_desired_operating_speed", 65247, 1, 0, 16, 0.125, 0, "RPM", 0xFFFF},
	{519, "engine_operating_speed_asymmetry_adjust", 65247, 3, 0, 8, 1, 0, "", 0xFF},
	{2978, "estimated_engine_parasitic_losses", 65247, 4, 0, 8, 1, -125, "%", 0xFF},
	{6595, "aftertreatment_1_exhaust_gas_mass_flow", 65247, 5, 0, 16, 0.2, 0, "kg/h", 0xFFFF},

	// ET1 - Engine Temperature 1 (PGN 65262 / 0xFEEE), broadcast every 1000ms
	{110, "engine_coolant_temperature", 65262, 0, 0, 8, 1, -40, "C", 0xFF},
	{174, "fuel_temperature", 65262, 1, 0, 8, 1, -40, "C", 0xFF},
	{175, "engine_oil_temperature_1", 65262, 2, 0, 16, 0.03125, -273, "C", 0xFFFF},
	{176, "turbo_oil_temperature", 65262, 4, 0, 16, 0.03125, -273, "C", 0xFFFF},
	{52, "engine_intercooler_temperature", 65262, 6, 0, 8, 1, -40, "C", 0xFF},
	{1134, "engine_intercooler_thermostat_opening", 65262, 7, 0, 8, 0.4, 0, "%", 0xFF},

	// EFL/P1 - Engine Fluid Level/Pressure 1 (PGN 65263 / 0xFEEF), broadcast every 500ms
	{94, "fuel_delivery_pressure", 65263, 0, 0, 8, 4, 0, "kPa", 0xFF},
	{22, "extended_crankcase_blowby_pressure", 65263, 1, 0, 8, 0.05, 0, "kPa", 0xFF},
	{98, "engine_oil_level", 65263, 2, 0, 8, 0.4, 0, "%", 0xFF},
	{100, "engine_oil_pressure", 65263, 3, 0, 8, 4, 0, "kPa", 0xFF},
	{101, "crankcase_pressure", 65263, 4, 0, 16, 0.0078125, -250, "kPa", 0xFFFF},
	{109, "coolant_pressure", 65263, 6, 0, 8, 2, 0, "kPa", 0xFF},
	{111, "coolant_level", 65263, 7, 0, 8, 0.4, 0, "%", 0xFF},

	// IC1 - Inlet/Exhaust Conditions 1 (PGN 65270 / 0xFEF6), broadcast every 500ms
	{81, "particulate_trap_inlet_pressure", 65270, 0, 0, 8, 0.5, 0, "kPa", 0xFF},
	{102, "boost_pressure", 65270, 1, 0, 8, 2, 0, "kPa", 0xFF},
	{105, "intake_manifold_temperature", 65270, 2, 0, 8, 1, -40, "C", 0xFF},
	{106, "air_inlet_pressure", 65270, 3, 0, 8, 2, 0, "kPa", 0xFF},
	{107, "air_filter_differential_pressure", 65270, 4, 0, 8, 0.05, 0, "kPa", 0xFF},
	{173, "exhaust_gas_temperature", 65270, 5, 0, 16, 0.03125, -273, "C", 0xFFFF},
	{112, "coolant_filter_differential_pressure", 65270, 7, 0, 8, 0.5, 0, "kPa", 0xFF},

	// VEP1 - Vehicle Electrical Power 1 (PGN 65271 / 0xFEF7), broadcast every 1000ms
	{114, "net_battery_current", 65271, 0, 0, 16, 1, -125, "A", 0xFFFF},
	{115, "alternator_current", 65271, 2, 0, 16, 1, 0, "A", 0xFFFF},
	{168, "battery_potential", 65271, 4, 0, 16, 0.05, 0, "V", 0xFFFF},
	{158, "keyswitch_battery_potential", 65271, 6, 0, 16, 0.05, 0, "V", 0xFFFF},

	// AMB - Ambient Conditions (PGN 65269 / 0xFEF5), broadcast every 1000ms
	{108, "barometric_pressure", 65269, 0, 0, 8, 0.5, 0, "kPa", 0xFF},
	{170, "cab_interior_temperature", 65269, 1, 0, 16, 0.03125, -273, "C", 0xFFFF},
	{171, "ambient_air_temperature", 65269, 3, 0, 16, 0.03125, -273, "C", 0xFFFF},
	{172, "air_inlet_temperature", 65269, 5, 0, 8, 1, -40, "C", 0xFF},
	{79, "road_surface_temperature", 65269, 6, 0, 16, 0.03125, -273, "C", 0xFFFF},

	// LFE - Liquid Fuel Economy (PGN 65266 / 0xFEF2), broadcast every 100ms
	{183, "fuel_rate", 65266, 0, 0, 16, 0.05, 0, "L/h", 0xFFFF},
	{184, "instantaneous_fuel_economy", 65266, 2, 0, 16, 0.001953125, 0, "km/L", 0xFFFF},
	{185, "average_fuel_economy", 65266, 4, 0, 16, 0.001953125, 0, "km/L", 0xFFFF},
	{51, "throttle_position", 65266, 6, 0, 8, 0.4, 0, "%", 0xFF},

	// HOURS - Engine Hours, Revolutions (PGN 65253 / 0xFEE5), broadcast on request or every 1000ms
	{247, "engine_total_hours_of_operation", 65253, 0, 0, 32, 0.05, 0, "h", 0xFFFFFFFF},
	{249, "engine_total_revolutions", 65253, 4, 0, 32, 1000, 0, "r", 0xFFFFFFFF},

	// FC - Fuel Consumption (PGN 65257 / 0xFEE9), broadcast every 1000ms
	{182, "engine_trip_fuel", 65257, 0, 0, 32, 0.5, 0, "L", 0xFFFFFFFF},
	{250, "engine_total_fuel_used", 65257, 4, 0, 32, 0.5, 0, "L", 0xFFFFFFFF},

	// VH - Vehicle Hours (PGN 65217 / 0xFEC1), broadcast every 1000ms
	{246, "engine_total_idle_hours", 65217, 0, 0, 32, 0.05, 0, "h", 0xFFFFFFFF},
	{248, "engine_total_pto_hours", 65217, 4, 0, 32, 0.05, 0, "h", 0xFFFFFFFF},

	// DD - Distance (PGN 65248 / 0xFEE0), broadcast every 1000ms
	{244, "trip_distance", 65248, 0, 0, 32, 0.125, 0, "km", 0xFFFFFFFF},
	{245, "total_vehicle_distance", 65248, 4, 0, 32, 0.125, 0, "km", 0xFFFFFFFF},

	// CCVS - Cruise Control/Vehicle Speed (PGN 65265 / 0xFEF1), broadcast every 100ms
	{69, "two_speed_axle_switch", 65265, 0, 0, 2, 1, 0, "", 0x3},
	{70, "parking_brake_switch", 65265, 0, 2, 2, 1, 0, "", 0x3},
	{84, "wheel_based_vehicle_speed", 65265, 1, 0, 16, 0.00390625, 0, "km/h", 0xFFFF},
	{595, "cruise_control_active", 65265, 3, 0, 2, 1, 0, "", 0x3},
	{596, "cruise_control_enable_switch", 65265, 3, 2, 2, 1, 0, "", 0x3},
	{86, "cruise_control_set_speed", 65265, 5, 0, 8, 1, 0, "km/h", 0xFF},
	{976, "pto_state", 65265, 6, 0, 5, 1, 0, "", 0x1F},
}
