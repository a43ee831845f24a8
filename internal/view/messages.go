package view

// User-visible texts of the console.
const (
	MsgInvalidCredentials = "Username atau password salah."
	MsgLoginFailed        = "Terjadi kesalahan saat login."

	MsgListFailed = "Gagal memuat aset."
	MsgListEmpty  = "Tidak ada aset ditemukan."

	MsgAssetNotFound = "Aset tidak ditemukan."
	MsgDetailFailed  = "Gagal memuat detail aset."
	MsgHistoryEmpty  = "Belum ada riwayat untuk aset ini."

	MsgSaveFailed    = "Gagal menyimpan aset."
	MsgHistoryFailed = "Gagal menambahkan riwayat."

	MsgDeletePrompt = "Apakah Anda yakin ingin menghapus aset ini?"
	MsgDeleteFailed = "Gagal menghapus aset."

	MsgImportFailed     = "Gagal mengimpor data."
	MsgImportBadFile    = "Format file tidak valid atau terjadi kesalahan."
	MsgImportReadFailed = "Gagal membaca file."
	MsgImportBusy       = "Sedang memproses impor lain. Silakan coba lagi sebentar."
)
