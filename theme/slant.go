package theme

// slantThemes lists the slant arrangements per piece count.
var slantThemes = map[int][]Theme{
	2: {
		t("lean", skew(0, v, 0.56, 0.44)),
		t("steep-right", skew(0, v, 0.8, 0.2)),
		t("steep-left", skew(0, v, 0.2, 0.8)),
	},
	3: {
		t("lean-top", line(0, h, 0.5), skew(0, v, 0.56, 0.44)),
		t("lean-bottom", line(0, h, 0.5), skew(1, v, 0.56, 0.44)),
		t("wedge", line(0, h, 0.3), skew(0, v, 0.7, 0.3)),
	},
	4: {
		t("grid", grid(0, 2, 2)),
		t("cross", skewCross(0, 0.4, 0.6, 0.6, 0.4)),
		t("lean-pairs", skew(0, h, 0.55, 0.45), skew(0, v, 0.4, 0.6), skew(2, v, 0.6, 0.4)),
	},
	5: {
		t("pair-over-three", skew(0, h, 0.55, 0.45), skew(0, v, 0.4, 0.6), parts(2, 3, v)),
		t("cross-split", skewCross(0, 0.45, 0.55, 0.55, 0.45), skew(3, v, 0.45, 0.55)),
	},
	6: {
		t("grid-3x2", grid(0, 3, 2)),
		t("grid-2x3", grid(0, 2, 3)),
	},
	7: {
		t("three-over-grid", skew(0, h, 0.45, 0.55), grid(1, 2, 2), parts(0, 3, v)),
	},
	8: {
		t("grid-4x2", grid(0, 4, 2)),
		t("grid-2x4", grid(0, 2, 4)),
	},
	9: {
		t("grid-3x3", grid(0, 3, 3)),
	},
}
